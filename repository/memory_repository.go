package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"aifit/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uint]models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) || strings.EqualFold(u.Username, user.Username) {
			return fmt.Errorf("%w: %s", ErrDuplicate, user.Email)
		}
	}

	r.nextID++
	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) find(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Username, username) })
}

func (r *MemoryUserRepository) FindByResetToken(_ context.Context, token string, now time.Time) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	return r.find(func(u models.User) bool {
		return u.ResetToken == token && u.ResetTokenExpires.After(now)
	})
}

func (r *MemoryUserRepository) update(id uint, fn func(*models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	fn(&u)
	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}

func (r *MemoryUserRepository) SaveResetToken(_ context.Context, id uint, token string, expires time.Time) error {
	return r.update(id, func(u *models.User) {
		u.ResetToken = token
		u.ResetTokenExpires = expires
	})
}

func (r *MemoryUserRepository) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	return r.update(id, func(u *models.User) {
		u.Password = passwordHash
		u.ResetToken = ""
		u.ResetTokenExpires = time.Time{}
	})
}

// MemoryCalculationRepository is an in-memory implementation of CalculationRepository.
type MemoryCalculationRepository struct {
	mu     sync.RWMutex
	nextID uint
	data   []models.UserCalculation
}

func NewMemoryCalculationRepository() *MemoryCalculationRepository {
	return &MemoryCalculationRepository{}
}

func (r *MemoryCalculationRepository) Create(_ context.Context, calc *models.UserCalculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	calc.ID = r.nextID
	if calc.Date.IsZero() {
		calc.Date = time.Now()
	}
	r.data = append(r.data, *calc)
	return nil
}

func (r *MemoryCalculationRepository) ListByUser(_ context.Context, userID uint, typ models.CalculationType) ([]models.UserCalculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.UserCalculation{}
	for _, c := range r.data {
		if c.UserID == userID && (typ == "" || c.Type == typ) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// MemoryChatRepository is an in-memory implementation of ChatRepository.
type MemoryChatRepository struct {
	mu     sync.RWMutex
	nextID uint
	data   []models.ChatHistory
}

func NewMemoryChatRepository() *MemoryChatRepository {
	return &MemoryChatRepository{}
}

func (r *MemoryChatRepository) Create(_ context.Context, chat *models.ChatHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	chat.ID = r.nextID
	if chat.Timestamp.IsZero() {
		chat.Timestamp = time.Now()
	}
	r.data = append(r.data, *chat)
	return nil
}

func (r *MemoryChatRepository) ListByUser(_ context.Context, userID uint) ([]models.ChatHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.ChatHistory{}
	for _, c := range r.data {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// MemoryVideoRepository is an in-memory implementation of VideoRepository.
type MemoryVideoRepository struct {
	mu     sync.RWMutex
	nextID uint
	data   []models.WorkoutVideo
}

func NewMemoryVideoRepository() *MemoryVideoRepository {
	return &MemoryVideoRepository{}
}

func (r *MemoryVideoRepository) List(_ context.Context, category string) ([]models.WorkoutVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.WorkoutVideo{}
	for _, v := range r.data {
		if allCategories(category) || v.Category == category {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *MemoryVideoRepository) FindByID(_ context.Context, id uint) (*models.WorkoutVideo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.data {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryVideoRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.data)), nil
}

func (r *MemoryVideoRepository) CreateBatch(_ context.Context, videos []models.WorkoutVideo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range videos {
		r.nextID++
		videos[i].ID = r.nextID
		r.data = append(r.data, videos[i])
	}
	return nil
}
