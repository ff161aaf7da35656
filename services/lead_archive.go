package services

import (
	"fmt"
	"time"

	"agenz_site/models"

	"gorm.io/gorm"
)

// RecordSubmission stores a validated submission in the local archive as pending
func RecordSubmission(db *gorm.DB, sub *Submission, ipAddress, userAgent string) (*models.LeadSubmission, error) {
	record := &models.LeadSubmission{
		FormType:       sub.FormType,
		Name:           sub.Name,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Company:        sub.Company,
		SourcePage:     sub.SourcePage,
		Payload:        string(sub.Payload),
		DeliveryStatus: models.DeliveryPending,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
	}

	if err := db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to archive submission: %w", err)
	}
	return record, nil
}

// MarkDelivery records the outcome of one delivery attempt
func MarkDelivery(db *gorm.DB, id string, result DeliveryResult) error {
	updates := map[string]interface{}{
		"delivery_status":   result.Status(),
		"delivery_attempts": gorm.Expr("delivery_attempts + ?", 1),
		"last_status_code":  result.StatusCode,
		"last_error":        "",
	}
	if result.Err != nil {
		updates["last_error"] = result.Err.Error()
	}
	if result.Status() == models.DeliveryDelivered {
		now := time.Now()
		updates["delivered_at"] = &now
	}

	res := db.Model(&models.LeadSubmission{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update delivery status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

// SubmissionFilters narrows archive listings
type SubmissionFilters struct {
	FormType       string
	DeliveryStatus string
	Since          *time.Time
}

func (f SubmissionFilters) apply(query *gorm.DB) *gorm.DB {
	if f.FormType != "" {
		query = query.Where("form_type = ?", f.FormType)
	}
	if f.DeliveryStatus != "" {
		query = query.Where("delivery_status = ?", f.DeliveryStatus)
	}
	if f.Since != nil {
		query = query.Where("created_at >= ?", *f.Since)
	}
	return query
}

// GetSubmissions returns archived submissions newest first, with the total matching count
func GetSubmissions(db *gorm.DB, filters SubmissionFilters, page, limit int) ([]models.LeadSubmission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := filters.apply(db.Model(&models.LeadSubmission{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	var submissions []models.LeadSubmission
	err := filters.apply(db.Model(&models.LeadSubmission{})).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, total, nil
}

// GetSubmissionsForExport returns every matching submission oldest first, the order rows were appended to the sheets
func GetSubmissionsForExport(db *gorm.DB, filters SubmissionFilters) ([]models.LeadSubmission, error) {
	var submissions []models.LeadSubmission
	err := filters.apply(db.Model(&models.LeadSubmission{})).
		Order("created_at ASC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions for export: %w", err)
	}
	return submissions, nil
}

// GetRedeliverableSubmissions returns failed submissions that have attempts left
func GetRedeliverableSubmissions(db *gorm.DB, limit int) ([]models.LeadSubmission, error) {
	var submissions []models.LeadSubmission
	err := db.Where("delivery_status = ? AND delivery_attempts < ?", models.DeliveryFailed, models.MaxDeliveryAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load redeliverable submissions: %w", err)
	}
	return submissions, nil
}

// CountSubmissionsByStatus returns the number of archived submissions per delivery status
func CountSubmissionsByStatus(db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		DeliveryStatus string
		Count          int64
	}
	err := db.Model(&models.LeadSubmission{}).
		Select("delivery_status, COUNT(*) as count").
		Group("delivery_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.DeliveryStatus] = row.Count
	}
	return counts, nil
}
