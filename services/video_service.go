package services

import (
	"context"
	_ "embed"
	"fmt"

	"aifit/models"
	"aifit/repository"

	"gopkg.in/yaml.v3"
)

//go:embed videos.yaml
var seedVideosYAML []byte

type VideoService struct {
	repo repository.VideoRepository
}

func NewVideoService(repo repository.VideoRepository) *VideoService {
	return &VideoService{repo: repo}
}

func (s *VideoService) List(ctx context.Context, category string) ([]models.WorkoutVideo, error) {
	return s.repo.List(ctx, category)
}

func (s *VideoService) Get(ctx context.Context, id uint) (*models.WorkoutVideo, error) {
	return s.repo.FindByID(ctx, id)
}

// Seed fills an empty catalog with the bundled videos and reports how many
// were inserted.
func (s *VideoService) Seed(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	videos, err := parseSeedVideos(seedVideosYAML)
	if err != nil {
		return 0, err
	}
	if err := s.repo.CreateBatch(ctx, videos); err != nil {
		return 0, fmt.Errorf("insert seed videos: %w", err)
	}
	return len(videos), nil
}

func parseSeedVideos(data []byte) ([]models.WorkoutVideo, error) {
	var videos []models.WorkoutVideo
	if err := yaml.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("parse seed videos: %w", err)
	}
	for i, v := range videos {
		if v.Title == "" || v.VideoID == "" || v.Category == "" {
			return nil, fmt.Errorf("seed video %d: title, video_id and category are required", i)
		}
	}
	return videos, nil
}
