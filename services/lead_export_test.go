package services

import (
	"testing"
	"time"

	"agenz_site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateLeadWorkbook(t *testing.T) {
	lead, err := validLeadForm().Submission()
	require.NoError(t, err)
	contact, err := ContactForm{Name: "Ali", Email: "ali@shop.my", Subject: "support", Message: "Hi"}.Submission()
	require.NoError(t, err)

	created := time.Date(2025, 5, 2, 1, 30, 0, 0, time.UTC)
	records := []models.LeadSubmission{
		{FormType: lead.FormType, Name: lead.Name, Payload: string(lead.Payload), DeliveryStatus: models.DeliveryDelivered, CreatedAt: created},
		{FormType: contact.FormType, Name: contact.Name, Payload: string(contact.Payload), DeliveryStatus: models.DeliveryFailed, CreatedAt: created},
		{FormType: "newsletter", Name: "Siti", Email: "siti@x.my", Payload: `{"formType":"newsletter"}`, CreatedAt: created},
	}

	buf, err := GenerateLeadWorkbook(records, time.FixedZone("MYT", 8*3600))
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetLeads, SheetContact, SheetOther}, f.GetSheetList())

	leadRows, err := f.GetRows(SheetLeads)
	require.NoError(t, err)
	require.Len(t, leadRows, 2)
	assert.Equal(t, "Timestamp", leadRows[0][0])
	assert.Equal(t, "Message/Goals", leadRows[0][9])
	assert.Equal(t, "2025-05-02 09:30:00", leadRows[1][0])
	assert.Equal(t, "New", leadRows[1][1])
	assert.Equal(t, "Jane", leadRows[1][2])
	assert.Equal(t, "RM 5,000 - RM 15,000", leadRows[1][8])
	assert.Equal(t, "/pricing", leadRows[1][10])
	assert.Equal(t, models.DeliveryDelivered, leadRows[1][11])

	contactRows, err := f.GetRows(SheetContact)
	require.NoError(t, err)
	require.Len(t, contactRows, 2)
	assert.Equal(t, "Ali", contactRows[1][2])
	assert.Equal(t, "Support", contactRows[1][6])
	assert.Equal(t, "/contact", contactRows[1][8])

	otherRows, err := f.GetRows(SheetOther)
	require.NoError(t, err)
	require.Len(t, otherRows, 2)
	assert.Equal(t, "Siti", otherRows[1][2])
}

func TestGenerateLeadWorkbookEmpty(t *testing.T) {
	buf, err := GenerateLeadWorkbook(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetContact)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header row only")
}

func TestGenerateLeadWorkbookFreezesHeader(t *testing.T) {
	buf, err := GenerateLeadWorkbook(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	panes, err := f.GetPanes(SheetLeads)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, "A2", panes.TopLeftCell)

	width, err := f.GetColWidth(SheetLeads, "A")
	require.NoError(t, err)
	assert.Equal(t, 22.0, width)
}

func TestFormatHeaderReportsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := formatHeader(f, exportSheets[models.FormTypeLead], 0)
	assert.ErrorContains(t, err, SheetLeads)
}
