package booking

import (
	"bytes"
	"context"
	"fmt"

	"travel-backend/internal/apperr"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportHeaders = []string{"Day", "Booking ID", "Type", "Item ID", "Status", "User", "Email", "Created At"}

// ExportXLSX renders every booking, grouped by day ascending, as an Excel
// workbook.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	grouped, err := s.ListAllGrouped(ctx)
	if err != nil {
		return nil, err
	}

	data, err := renderWorkbook(grouped)
	if err != nil {
		return nil, apperr.Internal("Failed to export bookings.", err)
	}
	return data, nil
}

func renderWorkbook(grouped Grouped) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	_ = f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle)

	row := 2
	for _, day := range grouped {
		for _, b := range day.Bookings {
			values := []any{
				day.Day, b.ID, string(b.Type), b.ItemID, string(b.Status),
				b.UserName, b.UserEmail, b.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}
	}

	_ = f.SetColWidth(exportSheet, "A", "A", 12)
	_ = f.SetColWidth(exportSheet, "F", "G", 28)
	_ = f.SetColWidth(exportSheet, "H", "H", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}
