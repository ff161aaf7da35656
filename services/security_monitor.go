package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"agenz_site/config"
)

const (
	failedLoginWindow    = 10 * time.Minute
	failedLoginThreshold = 5
	alertCooldown        = time.Hour
	maxAlertHistory      = 100
)

// LoginMonitor tracks failed admin logins per IP. An IP that reaches the
// threshold inside the window is blocked until its attempts age out, and an
// alert is raised at most once per cooldown.
type LoginMonitor struct {
	mu           sync.Mutex
	failedLogins map[string][]time.Time
	alertedIPs   map[string]time.Time
	alerts       []SecurityAlert
	now          func() time.Time
	notify       func(SecurityAlert)
}

// SecurityAlert represents a triggered security alert
type SecurityAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
}

// NewLoginMonitor creates a monitor. Alerts are logged and, when NOTIFY_EMAIL is set, mailed.
func NewLoginMonitor(cfg *config.Config) *LoginMonitor {
	m := &LoginMonitor{
		failedLogins: make(map[string][]time.Time),
		alertedIPs:   make(map[string]time.Time),
		now:          time.Now,
	}
	if cfg != nil && cfg.NotifyEmail != "" {
		m.notify = func(alert SecurityAlert) {
			email := &Email{
				To:       []string{cfg.NotifyEmail},
				Subject:  "Security alert: " + alert.Reason,
				TextBody: fmt.Sprintf("Reason: %s\nIP address: %s\nTime: %s\n", alert.Reason, alert.IP, alert.Timestamp.Format(time.RFC1123)),
			}
			if err := SendEmail(cfg, email); err != nil {
				log.Printf("[WARNING] Failed to send security alert: %v", err)
			}
		}
	}
	return m
}

// recent drops attempts older than the window. Caller holds the lock.
func (m *LoginMonitor) recent(ip string, now time.Time) []time.Time {
	windowStart := now.Add(-failedLoginWindow)
	valid := m.failedLogins[ip][:0]
	for _, t := range m.failedLogins[ip] {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		delete(m.failedLogins, ip)
		return nil
	}
	m.failedLogins[ip] = valid
	return valid
}

// TrackFailedLogin records a failed login attempt and raises an alert at the threshold
func (m *LoginMonitor) TrackFailedLogin(ip string) {
	m.mu.Lock()
	now := m.now()
	m.failedLogins[ip] = append(m.recent(ip, now), now)

	var alert *SecurityAlert
	if len(m.failedLogins[ip]) >= failedLoginThreshold {
		alert = m.alertLocked(ip, "Multiple failed admin logins", now)
	}
	m.mu.Unlock()

	if alert != nil && m.notify != nil {
		go m.notify(*alert)
	}
}

// IsBlocked reports whether ip has reached the failed login threshold within the window
func (m *LoginMonitor) IsBlocked(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.recent(ip, m.now())) >= failedLoginThreshold
}

// alertLocked stores and logs an alert unless ip was alerted within the cooldown
func (m *LoginMonitor) alertLocked(ip, reason string, now time.Time) *SecurityAlert {
	if last, ok := m.alertedIPs[ip]; ok && now.Sub(last) < alertCooldown {
		return nil
	}
	m.alertedIPs[ip] = now

	alert := SecurityAlert{Timestamp: now, IP: ip, Reason: reason}
	m.alerts = append([]SecurityAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlertHistory {
		m.alerts = m.alerts[:maxAlertHistory]
	}

	log.Printf("[SECURITY ALERT] %s from IP: %s", reason, ip)
	return &alert
}

// GetRecentAlerts returns a copy of recent alerts, newest first
func (m *LoginMonitor) GetRecentAlerts() []SecurityAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	alertsCopy := make([]SecurityAlert, len(m.alerts))
	copy(alertsCopy, m.alerts)
	return alertsCopy
}
