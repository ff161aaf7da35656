package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"agenz_site/config"
	"agenz_site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLeadTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "leads.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.LeadSubmission{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func waitDispatcher(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Wait(ctx))
}

func TestIntakeClientDeliver(t *testing.T) {
	payload := []byte(`{"formType":"lead-form","fullName":"Jane"}`)

	t.Run("Posts JSON once", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, string(payload), string(body))
			w.Write([]byte(`{"result":"success"}`))
		}))
		defer server.Close()

		result := NewIntakeClient(server.URL, time.Second).Deliver(context.Background(), models.FormTypeLead, payload)

		assert.NoError(t, result.Err)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Equal(t, models.DeliveryDelivered, result.Status())
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Non-2xx is a failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		result := NewIntakeClient(server.URL, time.Second).Deliver(context.Background(), models.FormTypeLead, payload)

		assert.Error(t, result.Err)
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		assert.Equal(t, models.DeliveryFailed, result.Status())
	})

	t.Run("Times out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		result := NewIntakeClient(server.URL, 50*time.Millisecond).Deliver(context.Background(), models.FormTypeLead, payload)

		assert.Error(t, result.Err)
		assert.Equal(t, models.DeliveryFailed, result.Status())
	})

	t.Run("Skipped without endpoint", func(t *testing.T) {
		client := NewIntakeClient("", time.Second)
		assert.False(t, client.IsConfigured())

		result := client.Deliver(context.Background(), models.FormTypeLead, payload)
		assert.True(t, result.Skipped)
		assert.Equal(t, models.DeliverySkipped, result.Status())
	})
}

func TestDispatcherDispatch(t *testing.T) {
	t.Run("Returns before the endpoint answers", func(t *testing.T) {
		release := make(chan struct{})
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			<-release
		}))
		defer server.Close()

		d := NewDispatcher(&config.Config{IntakeURL: server.URL, IntakeTimeout: 5 * time.Second}, nil)
		sub, err := validLeadForm().Submission()
		require.NoError(t, err)

		returned := make(chan struct{})
		go func() {
			d.Dispatch(sub, "127.0.0.1", "test")
			close(returned)
		}()

		select {
		case <-returned:
		case <-time.After(time.Second):
			t.Fatal("Dispatch blocked on the intake endpoint")
		}

		close(release)
		waitDispatcher(t, d)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Archives and marks delivered", func(t *testing.T) {
		db := setupLeadTestDB(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		d := NewDispatcher(&config.Config{IntakeURL: server.URL, IntakeTimeout: time.Second}, db)
		sub, err := validLeadForm().Submission()
		require.NoError(t, err)

		d.Dispatch(sub, "10.0.0.1", "Mozilla/5.0")
		waitDispatcher(t, d)

		var record models.LeadSubmission
		require.NoError(t, db.First(&record).Error)
		assert.Equal(t, models.FormTypeLead, record.FormType)
		assert.Equal(t, "Jane", record.Name)
		assert.Equal(t, "10.0.0.1", record.IPAddress)
		assert.Equal(t, string(sub.Payload), record.Payload)
		assert.Equal(t, models.DeliveryDelivered, record.DeliveryStatus)
		assert.Equal(t, 1, record.DeliveryAttempts)
		assert.NotNil(t, record.DeliveredAt)
	})

	t.Run("Failure is recorded and redelivered", func(t *testing.T) {
		db := setupLeadTestDB(t)
		var healthy atomic.Bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !healthy.Load() {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		d := NewDispatcher(&config.Config{IntakeURL: server.URL, IntakeTimeout: time.Second}, db)
		sub, err := ContactForm{Name: "Ali", Email: "ali@shop.my", Message: "Hi"}.Submission()
		require.NoError(t, err)

		d.Dispatch(sub, "", "")
		waitDispatcher(t, d)

		pending, err := GetRedeliverableSubmissions(db, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, http.StatusBadGateway, pending[0].LastStatusCode)
		assert.Contains(t, pending[0].LastError, "502")

		healthy.Store(true)
		result := d.Redeliver(context.Background(), pending[0])
		assert.NoError(t, result.Err)

		var record models.LeadSubmission
		require.NoError(t, db.First(&record, "id = ?", pending[0].ID).Error)
		assert.Equal(t, models.DeliveryDelivered, record.DeliveryStatus)
		assert.Equal(t, 2, record.DeliveryAttempts)
		assert.Empty(t, record.LastError)
	})

	t.Run("Skipped without endpoint", func(t *testing.T) {
		db := setupLeadTestDB(t)
		d := NewDispatcher(&config.Config{}, db)
		sub, err := validLeadForm().Submission()
		require.NoError(t, err)

		d.Dispatch(sub, "", "")
		waitDispatcher(t, d)

		var record models.LeadSubmission
		require.NoError(t, db.First(&record).Error)
		assert.Equal(t, models.DeliverySkipped, record.DeliveryStatus)
	})
}
