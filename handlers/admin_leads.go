package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"agenz_site/db"
	"agenz_site/models"
	"agenz_site/services"
	"agenz_site/templates/pages"

	"github.com/labstack/echo/v4"
)

const adminLeadsPageSize = 50

// leadFilters reads the archive filters shared by the list and the export
func leadFilters(c echo.Context) services.SubmissionFilters {
	filters := services.SubmissionFilters{}
	switch ft := c.QueryParam("form_type"); ft {
	case models.FormTypeLead, models.FormTypeContact:
		filters.FormType = ft
	}
	if status := c.QueryParam("status"); models.IsValidDeliveryStatus(status) {
		filters.DeliveryStatus = status
	}
	return filters
}

// AdminLeadsHandler lists archived submissions with their delivery status
func AdminLeadsHandler(c echo.Context) error {
	if db.DB == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Lead archive is disabled")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	filters := leadFilters(c)

	submissions, total, err := services.GetSubmissions(db.DB, filters, page, adminLeadsPageSize)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load submissions")
	}
	counts, err := services.CountSubmissionsByStatus(db.DB)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load submissions")
	}

	view := pages.AdminLeadsView{
		Submissions: submissions,
		Total:       total,
		Counts:      counts,
		FormType:    filters.FormType,
		Status:      filters.DeliveryStatus,
		Page:        page,
		Limit:       adminLeadsPageSize,
	}
	seo := models.DefaultSEO("Lead submissions | Agenz", "").WithNoIndex()
	return render(c, http.StatusOK, pages.AdminLeads(newPage(c, seo), view))
}

// AdminLeadsExportHandler downloads the matching submissions as an XLSX workbook
func AdminLeadsExportHandler(c echo.Context) error {
	if db.DB == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Lead archive is disabled")
	}

	records, err := services.GetSubmissionsForExport(db.DB, leadFilters(c))
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load submissions")
	}

	buf, err := services.GenerateLeadWorkbook(records, services.ExportLocation())
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate export")
	}

	filename := fmt.Sprintf("leads_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, services.XLSXContentType, buf.Bytes())
}
