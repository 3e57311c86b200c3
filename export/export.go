// Package export serializes a generated plan into downloadable bytes.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"content-planner/models"
)

const sheetName = "Plan"

// Header is the exported column set, in order.
var Header = []string{
	"Date", "Week Index", "Platform", "Topic", "Audience",
	"Tone", "Title", "Description", "Format", "Hashtags",
}

func rowValues(r models.PlanRow) []string {
	return []string{
		r.Date, strconv.Itoa(r.WeekIndex), r.Platform, r.Topic, r.Audience,
		r.Tone, r.Title, r.Description, r.Format, r.Hashtags,
	}
}

// ToCSVBytes renders the plan as UTF-8 CSV with a header row.
func ToCSVBytes(plan *models.Plan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range plan.Rows {
		if err := w.Write(rowValues(row)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToXLSXBytes renders the plan as a single-sheet XLSX workbook.
// Engine failures are returned to the caller, never swallowed.
func ToXLSXBytes(plan *models.Plan) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}

	for i, row := range plan.Rows {
		values := rowValues(row)
		cells := make([]any, len(values))
		for j, v := range values {
			cells[j] = v
		}
		// Keep Week Index numeric in the sheet.
		cells[1] = row.WeekIndex
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
