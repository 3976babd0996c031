package models

// WorkoutVideo is a catalog entry pointing at a YouTube video.
type WorkoutVideo struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"not null" json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	ThumbnailURL string `json:"thumbnailUrl" yaml:"thumbnail_url"`
	VideoID      string `gorm:"not null" json:"videoId" yaml:"video_id"`
	Category     string `gorm:"index;not null" json:"category" yaml:"category"`
	Duration     string `json:"duration" yaml:"duration"`
}
