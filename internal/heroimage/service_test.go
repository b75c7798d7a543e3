package heroimage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-backend/internal/apperr"
	"travel-backend/internal/audit"
	"travel-backend/internal/database/dbtest"
	"travel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *audit.Recorder, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	logger := zerolog.New(io.Discard)
	rec := audit.NewRecorder(db, &logger)
	return NewService(db, rec), rec, db
}

func TestGetBeforeSet(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Hero image not yet configured.", err.Error())
}

func TestSetTwiceKeepsOneRow(t *testing.T) {
	s, rec, db := newTestService(t)
	ctx := context.Background()
	actor := audit.Actor{Email: "admin@example.com"}

	first, err := s.Set(ctx, actor, SetInput{ImageURL: "https://cdn.example.com/a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.jpg", first.ImageURL)

	_, err = s.Set(ctx, actor, SetInput{ImageURL: "https://cdn.example.com/b.jpg"})
	require.NoError(t, err)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/b.jpg", got.ImageURL)

	var count int64
	require.NoError(t, db.Model(&models.HeroImage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	logs, err := rec.List(ctx, audit.Filter{EntityType: "hero_image"})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionUpdate, logs[0].Action)
	assert.Equal(t, models.AuditActionCreate, logs[1].Action)
}

func TestSetRequiresURL(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.Set(context.Background(), audit.Actor{}, SetInput{ImageURL: "  "})
	require.Error(t, err)
	assert.Equal(t, "image_url is required.", err.Error())
}

func TestHandlers(t *testing.T) {
	s, _, _ := newTestService(t)
	logger := zerolog.New(io.Discard)
	app := fiber.New(fiber.Config{ErrorHandler: apperr.FiberErrorHandler(&logger)})
	app.Get("/hero-image", GetHandler(s))
	app.Put("/hero-image", SetHandler(s))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/hero-image", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPut, "/hero-image", strings.NewReader(`{"image_url":"https://cdn.example.com/hero.png"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/hero-image", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"image_url":"https://cdn.example.com/hero.png"}`, string(body))
}
