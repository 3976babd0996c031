package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"aifit/calculator"
	"aifit/services"

	"github.com/gin-gonic/gin"
)

// CalculatorController exposes the three calculators. A signed-in caller's
// results are saved to their history.
type CalculatorController struct {
	Calc   *services.CalculationService
	Logger *slog.Logger
}

func NewCalculatorController(calc *services.CalculationService, logger *slog.Logger) *CalculatorController {
	return &CalculatorController{Calc: calc, Logger: logger}
}

func (cc *CalculatorController) BMI(c *gin.Context) {
	var in calculator.BMIInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := cc.Calc.BMI(c.Request.Context(), c.GetUint("userID"), in)
	if err != nil {
		respondCalculatorError(c, cc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (cc *CalculatorController) Calories(c *gin.Context) {
	var in calculator.EnergyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := cc.Calc.Energy(c.Request.Context(), c.GetUint("userID"), in)
	if err != nil {
		respondCalculatorError(c, cc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (cc *CalculatorController) BodyFat(c *gin.Context) {
	var in calculator.BodyFatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := cc.Calc.BodyFat(c.Request.Context(), c.GetUint("userID"), in)
	if err != nil {
		respondCalculatorError(c, cc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// History lists the caller's saved calculations, optionally filtered by ?type=.
func (cc *CalculatorController) History(c *gin.Context) {
	calcs, err := cc.Calc.History(c.Request.Context(), c.GetUint("userID"), c.Query("type"))
	if err != nil {
		if errors.Is(err, services.ErrUnknownCalculationType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid calculation type"})
			return
		}
		respondServerError(c, cc.Logger, "list calculations failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calculations": calcs})
}
