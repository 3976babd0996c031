package controllers

import (
	"log/slog"
	"net/http"

	"aifit/calculator"
	"aifit/services"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=500"`
}

type ChatController struct {
	Chat   *services.ChatService
	Logger *slog.Logger
}

func NewChatController(chat *services.ChatService, logger *slog.Logger) *ChatController {
	return &ChatController{Chat: chat, Logger: logger}
}

// Ask answers 200 even when the AI provider fails; the body then carries the
// fallback text and apiError=true.
func (cc *ChatController) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if trimmed(req.Message) == "" {
		respondValidation(c, []calculator.FieldError{{
			Field:      "message",
			Constraint: "required",
			Message:    bindingMessage("message", "required", ""),
		}})
		return
	}

	reply, err := cc.Chat.Ask(c.Request.Context(), c.GetUint("userID"), req.Message)
	if err != nil {
		respondServerError(c, cc.Logger, "chat failed", err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (cc *ChatController) History(c *gin.Context) {
	history, err := cc.Chat.History(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		respondServerError(c, cc.Logger, "chat history failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
