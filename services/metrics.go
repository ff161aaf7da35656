package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FormSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_form_submissions_total",
		Help: "Validated form submissions accepted from visitors",
	}, []string{"form_type"})

	FormValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_form_validation_failures_total",
		Help: "Form posts rejected by validation, per field",
	}, []string{"form_type", "field"})

	IntakeDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_intake_deliveries_total",
		Help: "Delivery attempts to the intake endpoint by outcome (delivered, failed, skipped)",
	}, []string{"form_type", "outcome"})

	IntakeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "site_intake_delivery_duration_seconds",
		Help:    "Duration of intake endpoint requests",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"form_type"})
)

// RecordValidationFailures counts each failing field of a rejected form
func RecordValidationFailures(formType string, errs FieldErrors) {
	for field := range errs {
		FormValidationFailures.WithLabelValues(formType, field).Inc()
	}
}
