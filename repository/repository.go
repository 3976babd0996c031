// Package repository persists users, calculation and chat history, and the
// workout catalog. Each store has a gorm implementation for Postgres and an
// in-memory one used by tests and local runs.
package repository

import (
	"context"
	"errors"
	"time"

	"aifit/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// FindByEmail and FindByUsername match case-insensitively.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	SaveResetToken(ctx context.Context, id uint, token string, expires time.Time) error
	// FindByResetToken only returns users whose token expires after now.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)
	// UpdatePassword stores a new hash and clears any reset token.
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

type CalculationRepository interface {
	Create(ctx context.Context, calc *models.UserCalculation) error
	// ListByUser returns newest first. An empty typ returns every type.
	ListByUser(ctx context.Context, userID uint, typ models.CalculationType) ([]models.UserCalculation, error)
}

type ChatRepository interface {
	Create(ctx context.Context, chat *models.ChatHistory) error
	// ListByUser returns newest first.
	ListByUser(ctx context.Context, userID uint) ([]models.ChatHistory, error)
}

type VideoRepository interface {
	// List returns every video when category is empty or "all".
	List(ctx context.Context, category string) ([]models.WorkoutVideo, error)
	FindByID(ctx context.Context, id uint) (*models.WorkoutVideo, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, videos []models.WorkoutVideo) error
}

func allCategories(category string) bool {
	return category == "" || category == "all"
}
