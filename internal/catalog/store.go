package catalog

import (
	"context"
	"errors"

	"travel-backend/internal/apperr"
	"travel-backend/internal/audit"
	"travel-backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Store owns hotels and packages.
type Store struct {
	db    *gorm.DB
	audit *audit.Recorder
	log   zerolog.Logger
}

func NewStore(db *gorm.DB, rec *audit.Recorder, log *zerolog.Logger) *Store {
	return &Store{db: db, audit: rec, log: log.With().Str("component", "catalog").Logger()}
}

// Exists reports whether an item of the given kind exists.
func (s *Store) Exists(ctx context.Context, kind models.BookingType, id uint) (bool, error) {
	var model any
	switch kind {
	case models.BookingTypeHotel:
		model = &models.Hotel{}
	case models.BookingTypePackage:
		model = &models.Package{}
	default:
		return false, apperr.Validation("Unknown catalog type.")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// findByID loads dst by primary key, mapping a missing row to NotFound.
func (s *Store) findByID(ctx context.Context, dst any, id uint, notFound, failed string) error {
	err := s.db.WithContext(ctx).First(dst, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(notFound)
	}
	if err != nil {
		return apperr.Internal(failed, err)
	}
	return nil
}
