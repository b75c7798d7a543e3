package booking

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"travel-backend/internal/apperr"
	"travel-backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const dayLayout = "2006-01-02"

// Catalog resolves booking targets.
type Catalog interface {
	Exists(ctx context.Context, kind models.BookingType, id uint) (bool, error)
}

// Observer is told about every booking that was stored.
type Observer interface {
	BookingCreated(kind models.BookingType)
}

type Service struct {
	db       *gorm.DB
	catalog  Catalog
	observer Observer
	log      zerolog.Logger
}

// NewService wires the booking workflow. observer may be nil.
func NewService(db *gorm.DB, catalog Catalog, observer Observer, log *zerolog.Logger) *Service {
	return &Service{
		db:       db,
		catalog:  catalog,
		observer: observer,
		log:      log.With().Str("component", "booking").Logger(),
	}
}

// CreateInput accepts item_id as a JSON number or a numeric string.
type CreateInput struct {
	Type        models.BookingType `json:"type"`
	ItemID      json.RawMessage    `json:"item_id"`
	BookingDate string             `json:"booking_date"`
}

// View is a booking as returned by the API.
type View struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"user_id"`
	Type        models.BookingType   `json:"type"`
	ItemID      uint                 `json:"item_id"`
	BookingDate string               `json:"booking_date"`
	Status      models.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UserName    string               `json:"user_name,omitempty"`
	UserEmail   string               `json:"user_email,omitempty"`
}

type bookingRow struct {
	ID          uint
	UserID      uint
	Type        models.BookingType
	ItemID      uint
	BookingDate time.Time
	Status      models.BookingStatus
	CreatedAt   time.Time
	UserName    string
	UserEmail   string
}

func (r bookingRow) view() View {
	return View{
		ID:          r.ID,
		UserID:      r.UserID,
		Type:        r.Type,
		ItemID:      r.ItemID,
		BookingDate: r.BookingDate.Format(dayLayout),
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
	}
}

var errInvalidBooking = apperr.Validation(`Invalid booking data. Requires type ("hotel" or "package"), item_id, and booking_date.`)

// parseItemID accepts a positive integer, either as a number or a string.
func parseItemID(raw json.RawMessage) (uint, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}

	var s string
	switch x := v.(type) {
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		s = strings.TrimSpace(x)
	default:
		return 0, false
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseBookingDate accepts YYYY-MM-DD or RFC 3339 and keeps only the
// calendar day.
func parseBookingDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(dayLayout, s); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// Create books an existing hotel or package for userID. New bookings are
// always Pending.
func (s *Service) Create(ctx context.Context, userID uint, in CreateInput) (*View, error) {
	if !in.Type.Valid() {
		return nil, errInvalidBooking
	}
	itemID, ok := parseItemID(in.ItemID)
	if !ok {
		return nil, errInvalidBooking
	}
	day, ok := parseBookingDate(in.BookingDate)
	if !ok {
		return nil, errInvalidBooking
	}

	exists, err := s.catalog.Exists(ctx, in.Type, itemID)
	if err != nil {
		return nil, apperr.Internal("Failed to create booking.", err)
	}
	if !exists {
		return nil, apperr.NotFound(string(in.Type) + " not found.")
	}

	b := models.Booking{
		UserID:      userID,
		Type:        in.Type,
		ItemID:      itemID,
		BookingDate: day,
		Status:      models.BookingStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, apperr.Internal("Failed to create booking.", err)
	}

	var row bookingRow
	err = s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", b.ID).Take(&row).Error
	if err != nil {
		return nil, apperr.Internal("Failed to create booking.", err)
	}

	if s.observer != nil {
		s.observer.BookingCreated(in.Type)
	}
	s.log.Info().Uint("booking_id", b.ID).Uint("user_id", userID).Str("type", string(in.Type)).Msg("booking created")

	v := row.view()
	return &v, nil
}

func (s *Service) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id, bookings.user_id, bookings.type, bookings.item_id, bookings.booking_date, " +
			"bookings.status, bookings.created_at, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = bookings.user_id")
}

// ListForUser returns the user's bookings, latest booking date first.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]View, error) {
	var rows []bookingRow
	err := s.joined(ctx).
		Where("bookings.user_id = ?", userID).
		Order("bookings.booking_date desc, bookings.id desc").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve bookings.", err)
	}

	views := make([]View, 0, len(rows))
	for _, r := range rows {
		v := r.view()
		v.UserEmail = ""
		views = append(views, v)
	}
	return views, nil
}

// ListAllGrouped returns every booking grouped by calendar day, days in
// ascending order.
func (s *Service) ListAllGrouped(ctx context.Context) (Grouped, error) {
	var rows []bookingRow
	err := s.joined(ctx).
		Order("bookings.booking_date asc, bookings.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve all bookings.", err)
	}

	views := make([]View, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return GroupByDay(views), nil
}
