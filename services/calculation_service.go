package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"aifit/calculator"
	"aifit/metrics"
	"aifit/models"
	"aifit/repository"
)

var ErrUnknownCalculationType = errors.New("unknown calculation type")

// CalculationService runs the calculators and, for signed-in users, keeps a
// history of the results. A userID of 0 means anonymous: nothing is saved.
type CalculationService struct {
	repo     repository.CalculationRepository
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewCalculationService(repo repository.CalculationRepository, notifier Notifier, logger *slog.Logger) *CalculationService {
	return &CalculationService{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

func (s *CalculationService) BMI(ctx context.Context, userID uint, in calculator.BMIInput) (calculator.BMIResult, error) {
	res, err := calculator.ComputeBMI(in)
	if err != nil {
		s.countFailure(models.CalculationBMI, err)
		return res, err
	}
	metrics.IncCalculation(string(models.CalculationBMI), "ok")

	s.save(ctx, userID, models.CalculationBMI, formatFloat(res.BMI), map[string]any{
		"height":   in.Height,
		"weight":   in.Weight,
		"category": res.Category,
	})
	return res, nil
}

func (s *CalculationService) Energy(ctx context.Context, userID uint, in calculator.EnergyInput) (calculator.EnergyResult, error) {
	res, err := calculator.ComputeEnergy(in)
	if err != nil {
		s.countFailure(models.CalculationCalories, err)
		return res, err
	}
	metrics.IncCalculation(string(models.CalculationCalories), "ok")

	s.save(ctx, userID, models.CalculationCalories, strconv.Itoa(res.Calories), res)
	return res, nil
}

func (s *CalculationService) BodyFat(ctx context.Context, userID uint, in calculator.BodyFatInput) (calculator.BodyFatResult, error) {
	res, err := calculator.ComputeBodyFat(in)
	if err != nil {
		s.countFailure(models.CalculationBodyFat, err)
		return res, err
	}
	metrics.IncCalculation(string(models.CalculationBodyFat), "ok")

	s.save(ctx, userID, models.CalculationBodyFat, formatFloat(res.BodyFat), map[string]any{
		"gender":   in.Gender,
		"height":   in.Height,
		"weight":   in.Weight,
		"neck":     in.Neck,
		"waist":    in.Waist,
		"hip":      in.Hip,
		"category": res.Category,
		"clamped":  res.Clamped,
	})
	return res, nil
}

// History lists a user's saved calculations, newest first. typ may be empty.
func (s *CalculationService) History(ctx context.Context, userID uint, typ string) ([]models.UserCalculation, error) {
	t := models.CalculationType(typ)
	switch t {
	case "", models.CalculationBMI, models.CalculationCalories, models.CalculationBodyFat:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalculationType, typ)
	}
	return s.repo.ListByUser(ctx, userID, t)
}

// save is best-effort: the caller already has a valid result.
func (s *CalculationService) save(ctx context.Context, userID uint, typ models.CalculationType, value string, details any) {
	if userID == 0 {
		return
	}

	raw, err := json.Marshal(details)
	if err != nil {
		s.logger.Warn("failed to encode calculation details", "type", typ, "error", err)
		return
	}

	calc := &models.UserCalculation{
		UserID:  userID,
		Type:    typ,
		Value:   value,
		Details: string(raw),
		Date:    s.now(),
	}
	if err := s.repo.Create(ctx, calc); err != nil {
		s.logger.Warn("failed to save calculation", "type", typ, "user_id", userID, "error", err)
		return
	}

	if s.notifier != nil {
		s.notifier.Broadcast(userID, map[string]any{
			"kind":        "calculation.created",
			"calculation": calc,
		})
	}
}

func (s *CalculationService) countFailure(typ models.CalculationType, err error) {
	outcome := "error"
	var verr *calculator.ValidationError
	var derr *calculator.DomainError
	switch {
	case errors.As(err, &verr):
		outcome = "invalid"
	case errors.As(err, &derr):
		outcome = "domain_error"
	}
	metrics.IncCalculation(string(typ), outcome)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
