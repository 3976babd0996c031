package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aifit/models"

	"gorm.io/gorm"
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ErrDuplicate, user.Email)
	}
	return err
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *GormUserRepository) SaveResetToken(ctx context.Context, id uint, token string, expires time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]any{"reset_token": token, "reset_token_expires": expires})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormUserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expires > ?", token, now).
		First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *GormUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]any{
			"password":            passwordHash,
			"reset_token":         "",
			"reset_token_expires": time.Time{},
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type GormCalculationRepository struct {
	db *gorm.DB
}

func NewGormCalculationRepository(db *gorm.DB) *GormCalculationRepository {
	return &GormCalculationRepository{db: db}
}

func (r *GormCalculationRepository) Create(ctx context.Context, calc *models.UserCalculation) error {
	if calc.Date.IsZero() {
		calc.Date = time.Now()
	}
	return r.db.WithContext(ctx).Create(calc).Error
}

func (r *GormCalculationRepository) ListByUser(ctx context.Context, userID uint, typ models.CalculationType) ([]models.UserCalculation, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if typ != "" {
		q = q.Where("type = ?", typ)
	}

	var calcs []models.UserCalculation
	err := q.Order("date desc, id desc").Find(&calcs).Error
	return calcs, err
}

type GormChatRepository struct {
	db *gorm.DB
}

func NewGormChatRepository(db *gorm.DB) *GormChatRepository {
	return &GormChatRepository{db: db}
}

func (r *GormChatRepository) Create(ctx context.Context, chat *models.ChatHistory) error {
	if chat.Timestamp.IsZero() {
		chat.Timestamp = time.Now()
	}
	return r.db.WithContext(ctx).Create(chat).Error
}

func (r *GormChatRepository) ListByUser(ctx context.Context, userID uint) ([]models.ChatHistory, error) {
	var history []models.ChatHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc, id desc").
		Find(&history).Error
	return history, err
}

type GormVideoRepository struct {
	db *gorm.DB
}

func NewGormVideoRepository(db *gorm.DB) *GormVideoRepository {
	return &GormVideoRepository{db: db}
}

func (r *GormVideoRepository) List(ctx context.Context, category string) ([]models.WorkoutVideo, error) {
	q := r.db.WithContext(ctx)
	if !allCategories(category) {
		q = q.Where("category = ?", category)
	}

	var videos []models.WorkoutVideo
	err := q.Order("id").Find(&videos).Error
	return videos, err
}

func (r *GormVideoRepository) FindByID(ctx context.Context, id uint) (*models.WorkoutVideo, error) {
	var video models.WorkoutVideo
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &video, nil
}

func (r *GormVideoRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.WorkoutVideo{}).Count(&n).Error
	return n, err
}

func (r *GormVideoRepository) CreateBatch(ctx context.Context, videos []models.WorkoutVideo) error {
	if len(videos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&videos).Error
}
