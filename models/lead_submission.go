package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Form types (payload discriminator understood by the intake script)
const (
	FormTypeLead    = "lead-form"
	FormTypeContact = "contact-form"
)

// Delivery status of a submission towards the intake endpoint
const (
	DeliveryPending   = "pending"
	DeliveryDelivered = "delivered"
	DeliveryFailed    = "failed"
	DeliverySkipped   = "skipped" // no intake endpoint configured
)

// MaxDeliveryAttempts bounds redelivery of failed submissions
const MaxDeliveryAttempts = 5

// LeadSubmission is the local archive record of a form submission.
// Payload holds the exact JSON body that is sent to the intake endpoint.
type LeadSubmission struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FormType   string `gorm:"not null;index" json:"form_type"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	SourcePage string `json:"source_page"`
	Payload    string `gorm:"type:text;not null" json:"-"`

	// Delivery tracking
	DeliveryStatus   string     `gorm:"not null;default:pending;index" json:"delivery_status"`
	DeliveryAttempts int        `gorm:"not null;default:0" json:"delivery_attempts"`
	LastStatusCode   int        `json:"last_status_code,omitempty"`
	LastError        string     `gorm:"type:text" json:"last_error,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`

	// Audit fields
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `gorm:"type:text" json:"user_agent,omitempty"`
}

// BeforeCreate hook to generate UUID
func (ls *LeadSubmission) BeforeCreate(tx *gorm.DB) error {
	if ls.ID == "" {
		ls.ID = uuid.New().String()
	}
	return nil
}

// IsValidDeliveryStatus checks if a delivery status value is known
func IsValidDeliveryStatus(status string) bool {
	switch status {
	case DeliveryPending, DeliveryDelivered, DeliveryFailed, DeliverySkipped:
		return true
	}
	return false
}
