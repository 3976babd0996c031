package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"aifit/repository"
	"aifit/services"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	Videos *services.VideoService
	Logger *slog.Logger
}

func NewVideoController(videos *services.VideoService, logger *slog.Logger) *VideoController {
	return &VideoController{Videos: videos, Logger: logger}
}

// List returns the catalog, filtered by ?category= unless it is empty or "all".
func (vc *VideoController) List(c *gin.Context) {
	videos, err := vc.Videos.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondServerError(c, vc.Logger, "list videos failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

func (vc *VideoController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid video ID"})
		return
	}

	video, err := vc.Videos.Get(c.Request.Context(), uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}
	if err != nil {
		respondServerError(c, vc.Logger, "get video failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"video": video})
}
