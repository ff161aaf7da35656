package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"agenz_site/config"
	"agenz_site/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// maxDrainBytes caps how much of the intake response body is read before closing
const maxDrainBytes = 64 << 10

// DeliveryResult is the outcome of one POST to the intake endpoint
type DeliveryResult struct {
	StatusCode int
	Err        error
	Skipped    bool
	Duration   time.Duration
}

// Status maps the result onto a LeadSubmission delivery status
func (r DeliveryResult) Status() string {
	switch {
	case r.Skipped:
		return models.DeliverySkipped
	case r.Err != nil:
		return models.DeliveryFailed
	default:
		return models.DeliveryDelivered
	}
}

// IntakeClient posts submission payloads to the external intake endpoint.
// The endpoint's response body carries nothing the site needs; only the status is kept.
type IntakeClient struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

// NewIntakeClient creates a client for endpoint. An empty endpoint yields a client that skips delivery.
func NewIntakeClient(endpoint string, timeout time.Duration) *IntakeClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &IntakeClient{
		endpoint:   endpoint,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// IsConfigured reports whether an intake endpoint is set
func (c *IntakeClient) IsConfigured() bool {
	return c.endpoint != ""
}

// Deliver sends payload as a single JSON POST and waits at most the client timeout
func (c *IntakeClient) Deliver(ctx context.Context, formType string, payload []byte) DeliveryResult {
	if !c.IsConfigured() {
		return DeliveryResult{Skipped: true}
	}

	ctx, span := tracer().Start(ctx, "intake.deliver", trace.WithAttributes(
		attribute.String("form.type", formType),
		attribute.Int("payload.size", len(payload)),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	result := c.post(ctx, payload)
	result.Duration = time.Since(start)
	IntakeDuration.WithLabelValues(formType).Observe(result.Duration.Seconds())

	span.SetAttributes(attribute.Int("http.status_code", result.StatusCode))
	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, "intake delivery failed")
	}
	return result
}

func (c *IntakeClient) post(ctx context.Context, payload []byte) DeliveryResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return DeliveryResult{Err: fmt.Errorf("failed to build intake request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return DeliveryResult{Err: fmt.Errorf("intake request failed: %w", err)}
	}
	defer resp.Body.Close()

	// Response content is ignored
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return DeliveryResult{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("intake endpoint returned status %d", resp.StatusCode),
		}
	}
	return DeliveryResult{StatusCode: resp.StatusCode}
}

// Dispatcher hands validated submissions to the intake endpoint in the background.
// Visitors are never told about delivery problems; those are archived, counted and logged.
type Dispatcher struct {
	cfg    *config.Config
	db     *gorm.DB // nil when the lead archive is disabled
	client *IntakeClient
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher. db may be nil.
func NewDispatcher(cfg *config.Config, db *gorm.DB) *Dispatcher {
	client := NewIntakeClient(cfg.IntakeURL, cfg.IntakeTimeout)
	if !client.IsConfigured() {
		log.Println("[WARNING] INTAKE_URL not configured, form submissions will not be forwarded")
	}
	return &Dispatcher{cfg: cfg, db: db, client: client}
}

// Dispatch archives sub and starts its delivery. It returns without waiting for the endpoint.
func (d *Dispatcher) Dispatch(sub *Submission, ipAddress, userAgent string) {
	FormSubmissions.WithLabelValues(sub.FormType).Inc()

	recordID := ""
	if d.db != nil {
		record, err := RecordSubmission(d.db, sub, ipAddress, userAgent)
		if err != nil {
			log.Printf("[WARNING] %v", err)
		} else {
			recordID = record.ID
		}
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		result := d.client.Deliver(context.Background(), sub.FormType, sub.Payload)
		d.finish(sub.FormType, recordID, result)

		if d.cfg.NotifyEmail != "" {
			if err := SendEmail(d.cfg, BuildSubmissionNotificationEmail(d.cfg.NotifyEmail, sub)); err != nil {
				log.Printf("Error sending submission notification: %v", err)
			}
		}
	}()
}

// Redeliver retries an archived submission synchronously
func (d *Dispatcher) Redeliver(ctx context.Context, record models.LeadSubmission) DeliveryResult {
	result := d.client.Deliver(ctx, record.FormType, []byte(record.Payload))
	d.finish(record.FormType, record.ID, result)
	return result
}

func (d *Dispatcher) finish(formType, recordID string, result DeliveryResult) {
	IntakeDeliveries.WithLabelValues(formType, result.Status()).Inc()

	switch result.Status() {
	case models.DeliveryFailed:
		log.Printf("[WARNING] Intake delivery failed (form: %s, record: %s): %v", formType, recordID, result.Err)
	case models.DeliveryDelivered:
		log.Printf("Intake delivery succeeded (form: %s, status: %d, took: %s)", formType, result.StatusCode, result.Duration)
	}

	if d.db != nil && recordID != "" {
		if err := MarkDelivery(d.db, recordID, result); err != nil {
			log.Printf("[WARNING] %v", err)
		}
	}
}

// Wait blocks until in-flight deliveries finish or ctx is done
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
