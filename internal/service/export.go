package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

const checkInSheet = "Check-ins"

var checkInHeader = []interface{}{"Date", "Mood", "Symptoms", "Journal"}

// WriteCheckInWorkbook renders the timeline as an XLSX workbook, one row per
// entry in the order given.
func WriteCheckInWorkbook(w io.Writer, entries []domain.CheckInEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", checkInSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(checkInSheet, "A1", &checkInHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		symptoms := "None"
		if len(e.Symptoms) > 0 {
			symptoms = strings.Join(e.Symptoms, ", ")
		}
		row := []interface{}{e.CreatedAt.UTC().Format(time.RFC3339), e.Mood, symptoms, e.Journal}
		if err := f.SetSheetRow(checkInSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
