package heroimage

import (
	"context"
	"errors"
	"strings"
	"time"

	"travel-backend/internal/apperr"
	"travel-backend/internal/audit"
	"travel-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Config is the public shape of the hero image setting.
type Config struct {
	ImageURL string `json:"image_url"`
}

type SetInput struct {
	ImageURL string `json:"image_url"`
}

// Service stores the single hero image row.
type Service struct {
	db    *gorm.DB
	audit *audit.Recorder
}

func NewService(db *gorm.DB, rec *audit.Recorder) *Service {
	return &Service{db: db, audit: rec}
}

// Set inserts or replaces the hero image and returns the stored value.
func (s *Service) Set(ctx context.Context, actor audit.Actor, in SetInput) (*Config, error) {
	url := strings.TrimSpace(in.ImageURL)
	if url == "" {
		return nil, apperr.Validation("image_url is required.")
	}

	var before *Config
	if prev, err := s.load(ctx); err == nil {
		before = prev
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("Failed to set hero image.", err)
	}

	row := models.HeroImage{ID: models.HeroImageID, ImageURL: url, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"image_url", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, apperr.Internal("Failed to set hero image.", err)
	}

	stored, err := s.load(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to set hero image.", err)
	}

	action := models.AuditActionUpdate
	if before == nil {
		action = models.AuditActionCreate
	}
	s.audit.Record(ctx, audit.Entry{
		Actor: actor, EntityType: "hero_image", EntityID: models.HeroImageID,
		Action: action, Description: "Hero image set", Before: before, After: stored,
	})
	return stored, nil
}

// Get returns the hero image, or NotFound while none has been set.
func (s *Service) Get(ctx context.Context) (*Config, error) {
	cfg, err := s.load(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Hero image not yet configured.")
	}
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve hero image.", err)
	}
	return cfg, nil
}

func (s *Service) load(ctx context.Context) (*Config, error) {
	var row models.HeroImage
	if err := s.db.WithContext(ctx).First(&row, models.HeroImageID).Error; err != nil {
		return nil, err
	}
	return &Config{ImageURL: row.ImageURL}, nil
}
