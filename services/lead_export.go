package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"agenz_site/models"

	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of generated workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names match the intake spreadsheet so exports can be pasted back
const (
	SheetLeads   = "Lead Form Submissions"
	SheetContact = "Contact Form Submissions"
	SheetOther   = "Other Submissions"
)

// exportTimestampLayout is yyyy-MM-dd HH:mm:ss
const exportTimestampLayout = "2006-01-02 15:04:05"

type exportSheet struct {
	name    string
	headers []string
	row     func(ts string, rec models.LeadSubmission, data map[string]string) []interface{}
}

var exportSheets = map[string]exportSheet{
	models.FormTypeLead: {
		name: SheetLeads,
		headers: []string{"Timestamp", "Status", "Full Name", "Email", "Phone", "Company Name", "Website",
			"Service Interest", "Budget", "Message/Goals", "Source Page", "Delivery"},
		row: func(ts string, rec models.LeadSubmission, d map[string]string) []interface{} {
			return []interface{}{ts, "New", d["fullName"], d["email"], d["phone"], d["companyName"], d["website"],
				d["serviceInterest"], d["budget"], d["message"], d["sourcePage"], rec.DeliveryStatus}
		},
	},
	models.FormTypeContact: {
		name: SheetContact,
		headers: []string{"Timestamp", "Status", "Full Name", "Email", "Phone", "Company Name", "Subject",
			"Message", "Source Page", "Delivery"},
		row: func(ts string, rec models.LeadSubmission, d map[string]string) []interface{} {
			return []interface{}{ts, "New", d["name"], d["email"], d["phone"], d["company"], d["subject"],
				d["message"], d["sourcePage"], rec.DeliveryStatus}
		},
	},
}

var otherSheet = exportSheet{
	name:    SheetOther,
	headers: []string{"Timestamp", "Status", "Name", "Email", "Phone", "Data", "Source Page", "Delivery"},
	row: func(ts string, rec models.LeadSubmission, _ map[string]string) []interface{} {
		return []interface{}{ts, "New", rec.Name, rec.Email, rec.Phone, rec.Payload, rec.SourcePage, rec.DeliveryStatus}
	},
}

// GenerateLeadWorkbook renders archived submissions into one sheet per form type.
// Timestamps are written in loc. Sheets are always present, even when empty.
func GenerateLeadWorkbook(records []models.LeadSubmission, loc *time.Location) (*bytes.Buffer, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1A73E8"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	ordered := []exportSheet{exportSheets[models.FormTypeLead], exportSheets[models.FormTypeContact], otherSheet}
	nextRow := make(map[string]int, len(ordered))

	for i, sheet := range ordered {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet %s: %w", sheet.name, err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}

		if err := f.SetSheetRow(sheet.name, "A1", &sheet.headers); err != nil {
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
		if err := formatHeader(f, sheet, headerStyle); err != nil {
			return nil, err
		}

		nextRow[sheet.name] = 2
	}

	for _, rec := range records {
		sheet, ok := exportSheets[rec.FormType]
		if !ok {
			sheet = otherSheet
		}

		data := map[string]string{}
		if err := json.Unmarshal([]byte(rec.Payload), &data); err != nil {
			// Unreadable payloads still show up with their indexed columns
			sheet = otherSheet
		}

		ts := rec.CreatedAt.In(loc).Format(exportTimestampLayout)
		values := sheet.row(ts, rec, data)

		cell, err := excelize.CoordinatesToCellName(1, nextRow[sheet.name])
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", nextRow[sheet.name], err)
		}
		if err := f.SetSheetRow(sheet.name, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
		nextRow[sheet.name]++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}

// ExportLocation is the timezone used for export timestamps, falling back to UTC
func ExportLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		return time.UTC
	}
	return loc
}

// formatHeader styles the header row, sets column widths and freezes the first row
func formatHeader(f *excelize.File, sheet exportSheet, style int) error {
	lastCell, err := excelize.CoordinatesToCellName(len(sheet.headers), 1)
	if err != nil {
		return fmt.Errorf("failed to address header of %s: %w", sheet.name, err)
	}
	if err := f.SetCellStyle(sheet.name, "A1", lastCell, style); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", sheet.name, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(sheet.headers))
	if err != nil {
		return fmt.Errorf("failed to name last column of %s: %w", sheet.name, err)
	}
	if err := f.SetColWidth(sheet.name, "A", lastCol, 22); err != nil {
		return fmt.Errorf("failed to set column widths of %s: %w", sheet.name, err)
	}

	if err := f.SetPanes(sheet.name, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("failed to freeze header of %s: %w", sheet.name, err)
	}
	return nil
}
