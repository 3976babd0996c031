package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"aifit/calculator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondServerError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err, "request_id", c.GetString("requestID"))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

func respondValidation(c *gin.Context, fields []calculator.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fields})
}

// respondBindError maps a ShouldBindJSON failure to a 400. Binding tag
// failures list their fields; malformed JSON gets a plain message.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fields := make([]calculator.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := lowerFirst(fe.Field())
		fields = append(fields, calculator.FieldError{
			Field:      name,
			Constraint: fe.Tag(),
			Param:      fe.Param(),
			Message:    bindingMessage(name, fe.Tag(), fe.Param()),
		})
	}
	respondValidation(c, fields)
}

// respondCalculatorError handles the two failure kinds of the calculators.
func respondCalculatorError(c *gin.Context, logger *slog.Logger, err error) {
	var verr *calculator.ValidationError
	if errors.As(err, &verr) {
		respondValidation(c, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, calculator.ErrHipRequired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Hip measurement is required for females"})
	case errors.Is(err, calculator.ErrInvalidMeasurement):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid measurements: body fat cannot be calculated for these values"})
	default:
		respondServerError(c, logger, "calculation failed", err)
	}
}

func bindingMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return field + " must be at least " + param + " characters"
	case "max":
		return field + " must be at most " + param + " characters"
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func trimmed(s string) string { return strings.TrimSpace(s) }
