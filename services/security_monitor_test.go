package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginMonitor(t *testing.T) {
	m := NewLoginMonitor(nil)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ip := "127.0.0.1"

	t.Run("BlocksAtThreshold", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			m.TrackFailedLogin(ip)
		}
		assert.False(t, m.IsBlocked(ip))
		assert.Empty(t, m.GetRecentAlerts())

		m.TrackFailedLogin(ip)
		assert.True(t, m.IsBlocked(ip))
		assert.False(t, m.IsBlocked("10.0.0.1"))

		alerts := m.GetRecentAlerts()
		if assert.Len(t, alerts, 1) {
			assert.Equal(t, ip, alerts[0].IP)
			assert.Contains(t, alerts[0].Reason, "Multiple failed admin logins")
		}
	})

	t.Run("AlertCooldown", func(t *testing.T) {
		m.TrackFailedLogin(ip)
		m.TrackFailedLogin(ip)
		assert.Len(t, m.GetRecentAlerts(), 1)
	})

	t.Run("AttemptsAgeOut", func(t *testing.T) {
		now = now.Add(11 * time.Minute)
		assert.False(t, m.IsBlocked(ip))
	})

	t.Run("AlertsAgainAfterCooldown", func(t *testing.T) {
		now = now.Add(time.Hour)
		for i := 0; i < 5; i++ {
			m.TrackFailedLogin(ip)
		}
		assert.Len(t, m.GetRecentAlerts(), 2)
	})
}
