package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"travel-backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Actor struct {
	ID    uint
	Email string
}

type Entry struct {
	Actor       Actor
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// Recorder writes audit logs. A nil *Recorder records nothing.
type Recorder struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewRecorder(db *gorm.DB, log *zerolog.Logger) *Recorder {
	return &Recorder{db: db, log: log.With().Str("component", "audit").Logger()}
}

// Record stores the entry. Failures are logged and swallowed so that an audit
// problem never fails the mutation being audited.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	if r == nil {
		return
	}
	if err := r.write(ctx, e); err != nil {
		r.log.Error().Err(err).
			Str("entity_type", e.EntityType).
			Uint("entity_id", e.EntityID).
			Str("action", string(e.Action)).
			Msg("audit log write failed")
	}
}

func (r *Recorder) write(ctx context.Context, e Entry) error {
	before, err := snapshot(e.Before)
	if err != nil {
		return err
	}
	after, err := snapshot(e.After)
	if err != nil {
		return err
	}

	row := models.AuditLog{
		ActorID:     e.Actor.ID,
		ActorEmail:  e.Actor.Email,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Action:      e.Action,
		Description: e.Description,
		BeforeData:  before,
		AfterData:   after,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("save audit log: %w", err)
	}
	return nil
}

func snapshot(v any) (datatypes.JSON, error) {
	if v == nil {
		return models.JSONNull, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal audit snapshot: %w", err)
	}
	return datatypes.JSON(b), nil
}

type Filter struct {
	EntityType string
	EntityID   uint
	Limit      int
}

// List returns logs newest first.
func (r *Recorder) List(ctx context.Context, f Filter) ([]models.AuditLog, error) {
	q := r.db.WithContext(ctx).Model(&models.AuditLog{})
	if f.EntityType != "" {
		q = q.Where("entity_type = ?", f.EntityType)
	}
	if f.EntityID != 0 {
		q = q.Where("entity_id = ?", f.EntityID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var logs []models.AuditLog
	if err := q.Order("created_at desc, id desc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
