package catalog

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"travel-backend/internal/apperr"
	"travel-backend/internal/audit"
	"travel-backend/internal/database/dbtest"
	"travel-backend/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = audit.Actor{ID: 0, Email: "admin@example.com"}

func newTestStore(t *testing.T) (*Store, *audit.Recorder) {
	t.Helper()
	db := dbtest.New(t)
	logger := zerolog.New(io.Discard)
	rec := audit.NewRecorder(db, &logger)
	return NewStore(db, rec, &logger), rec
}

func strPtr(s string) *string { return &s }

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestCreateHotel(t *testing.T) {
	s, rec := newTestStore(t)
	ctx := context.Background()

	hotel, err := s.CreateHotel(ctx, admin, HotelInput{
		Name:      strPtr("Sea View"),
		Location:  strPtr("Goa"),
		Price:     raw(`"120.50"`),
		Rating:    raw(`4.5`),
		Amenities: raw(`"wifi, pool"`),
	})
	require.NoError(t, err)
	assert.NotZero(t, hotel.ID)
	assert.Equal(t, "Sea View", hotel.Name)
	assert.InDelta(t, 120.5, hotel.Price, 1e-9)
	require.NotNil(t, hotel.Rating)
	assert.Equal(t, 4.5, *hotel.Rating)
	assert.Nil(t, hotel.Reviews)
	assert.JSONEq(t, `["wifi, pool"]`, string(hotel.Amenities))

	logs, err := rec.List(ctx, audit.Filter{EntityType: "hotel", EntityID: hotel.ID})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
}

func TestCreateHotelValidation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateHotel(ctx, admin, HotelInput{Name: strPtr("X"), Location: strPtr("Y")})
	require.Error(t, err)
	assert.Equal(t, "Missing required hotel fields (name, location, price).", err.Error())

	_, err = s.CreateHotel(ctx, admin, HotelInput{Name: strPtr("X"), Location: strPtr("Y"), Price: raw(`"abc"`)})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "Price must be a number.", err.Error())

	hotels, err := s.ListHotels(ctx)
	require.NoError(t, err)
	assert.Empty(t, hotels)
}

func TestUpdateHotelAppliesPresentFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	hotel, err := s.CreateHotel(ctx, admin, HotelInput{
		Name: strPtr("Sea View"), Location: strPtr("Goa"), Price: raw(`100`),
		Description: strPtr("Beachfront"), Reviews: strPtr("Lovely"),
	})
	require.NoError(t, err)

	updated, err := s.UpdateHotel(ctx, admin, hotel.ID, HotelInput{
		Price:       raw(`0`),
		Description: strPtr(""),
		Reviews:     strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Price)
	assert.Equal(t, "", updated.Description)
	assert.Nil(t, updated.Reviews)
	assert.Equal(t, "Sea View", updated.Name)
}

func TestUpdateHotelErrors(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	hotel, err := s.CreateHotel(ctx, admin, HotelInput{Name: strPtr("A"), Location: strPtr("B"), Price: raw(`1`)})
	require.NoError(t, err)

	_, err = s.UpdateHotel(ctx, admin, hotel.ID, HotelInput{})
	require.Error(t, err)
	assert.Equal(t, "No fields provided for update.", err.Error())

	_, err = s.UpdateHotel(ctx, admin, hotel.ID, HotelInput{Rating: raw(`"five"`)})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = s.UpdateHotel(ctx, admin, hotel.ID+100, HotelInput{Price: raw(`5`)})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Hotel not found.", err.Error())
}

func TestDeleteHotel(t *testing.T) {
	s, rec := newTestStore(t)
	ctx := context.Background()

	hotel, err := s.CreateHotel(ctx, admin, HotelInput{Name: strPtr("A"), Location: strPtr("B"), Price: raw(`1`)})
	require.NoError(t, err)

	require.NoError(t, s.DeleteHotel(ctx, admin, hotel.ID))

	err = s.DeleteHotel(ctx, admin, hotel.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	exists, err := s.Exists(ctx, models.BookingTypeHotel, hotel.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	logs, err := rec.List(ctx, audit.Filter{EntityType: "hotel"})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionDelete, logs[0].Action)
}

func TestPackageLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreatePackage(ctx, admin, PackageInput{Title: strPtr("Alps"), Location: strPtr("CH"), Price: raw(`900`)})
	require.Error(t, err)
	assert.Equal(t, "Missing required package fields (title, location, description, price).", err.Error())

	pkg, err := s.CreatePackage(ctx, admin, PackageInput{
		Title: strPtr("Alps"), Location: strPtr("CH"), Description: strPtr("Ten days"),
		Price: raw(`900`), Activities: raw(`["ski","hike"]`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["ski","hike"]`, string(pkg.Activities))

	exists, err := s.Exists(ctx, models.BookingTypePackage, pkg.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists(ctx, models.BookingTypeHotel, pkg.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.UpdatePackage(ctx, admin, pkg.ID, PackageInput{Description: strPtr("  ")})
	require.Error(t, err)
	assert.Equal(t, "Description cannot be empty.", err.Error())

	updated, err := s.UpdatePackage(ctx, admin, pkg.ID, PackageInput{Activities: raw(`null`)})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(updated.Activities))

	packages, err := s.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, packages, 1)

	require.NoError(t, s.DeletePackage(ctx, admin, pkg.ID))
	packages, err = s.ListPackages(ctx)
	require.NoError(t, err)
	assert.Empty(t, packages)
}
