package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"travel-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "Alice", "alice@example.com")

	_, err := f.svc.Create(ctx, alice.ID, CreateInput{Type: models.BookingTypeHotel, ItemID: json.RawMessage(`1`), BookingDate: "2024-01-02"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, alice.ID, CreateInput{Type: models.BookingTypePackage, ItemID: json.RawMessage(`7`), BookingDate: "2024-01-01"})
	require.NoError(t, err)

	data, err := f.svc.ExportXLSX(ctx)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "2024-01-01", rows[1][0])
	assert.Equal(t, "package", rows[1][2])
	assert.Equal(t, "2024-01-02", rows[2][0])
	assert.Equal(t, "alice@example.com", rows[2][6])
}

func TestExportEmpty(t *testing.T) {
	f := newFixture(t)

	data, err := f.svc.ExportXLSX(context.Background())
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(exportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
