package database_test

import (
	"context"
	"testing"
	"time"

	"travel-backend/internal/database"
	"travel-backend/internal/database/dbtest"
	"travel-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMigrateCreatesTables(t *testing.T) {
	db := dbtest.New(t)

	for _, m := range []any{
		&models.User{}, &models.Hotel{}, &models.Package{},
		&models.Booking{}, &models.HeroImage{}, &models.AuditLog{},
	} {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
}

func TestUniqueEmailTranslated(t *testing.T) {
	db := dbtest.New(t)

	first := models.User{Name: "A", Email: "a@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&first).Error)

	second := models.User{Name: "B", Email: "a@example.com", PasswordHash: "y", Role: models.RoleUser}
	err := db.Create(&second).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPingAndClose(t *testing.T) {
	db := dbtest.New(t)
	assert.NoError(t, database.Ping(context.Background(), db, time.Second))

	require.NoError(t, database.Close(db))
	assert.Error(t, database.Ping(context.Background(), db, time.Second))
	assert.NoError(t, database.Close(nil))
}
