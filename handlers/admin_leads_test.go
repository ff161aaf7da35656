package handlers

import (
	"net/http"
	"testing"

	"agenz_site/models"
	"agenz_site/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSubmissions(t *testing.T) {
	t.Helper()
	database := setupTestDB(t)
	records := []models.LeadSubmission{
		{FormType: models.FormTypeLead, Name: "Jane", Email: "jane@co.my", Payload: "{}", DeliveryStatus: models.DeliveryDelivered},
		{FormType: models.FormTypeContact, Name: "Ali", Email: "ali@shop.my", Payload: "{}", DeliveryStatus: models.DeliveryFailed, LastError: "intake endpoint returned status 500"},
	}
	for i := range records {
		require.NoError(t, database.Create(&records[i]).Error)
	}
}

func TestAdminLeadsHandler(t *testing.T) {
	setupContent(t)
	seedSubmissions(t)

	t.Run("ListsAll", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/admin/leads", nil)
		require.NoError(t, AdminLeadsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "jane@co.my")
		assert.Contains(t, rec.Body.String(), "ali@shop.my")
		assert.Contains(t, rec.Body.String(), "noindex")
	})

	t.Run("FiltersByStatus", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/admin/leads?status=failed", nil)
		require.NoError(t, AdminLeadsHandler(c))
		assert.NotContains(t, rec.Body.String(), "jane@co.my")
		assert.Contains(t, rec.Body.String(), "intake endpoint returned status 500")
	})
}

func TestAdminLeadsExportHandler(t *testing.T) {
	setupContent(t)
	seedSubmissions(t)

	_, c, rec := setupEcho(http.MethodGet, "/admin/leads/export.xlsx?form_type=lead-form", nil)
	require.NoError(t, AdminLeadsExportHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.XLSXContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=leads_")
	assert.Equal(t, "PK", rec.Body.String()[:2])
}

func TestAdminLeadsWithoutArchive(t *testing.T) {
	setupContent(t)
	_, c, _ := setupEcho(http.MethodGet, "/admin/leads", nil)

	err := AdminLeadsHandler(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Lead archive is disabled")
}
