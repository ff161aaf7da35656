package middleware

import (
	"fmt"
	"html"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines a fixed-window limit
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc returns the key requests are counted under (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is shown when the limit is exceeded
	Message string
}

type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter counts requests per key in fixed windows
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a limiter and starts its cleanup loop
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Allow records a request for key. When the limit is hit it returns false and the time until the window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{count: 1, expiresAt: now.Add(rl.config.Window)}
		return true, 0
	}
	if entry.count >= rl.config.Requests {
		return false, entry.expiresAt.Sub(now)
	}
	entry.count++
	return true, 0
}

// Check reports whether key has room left in its window without counting a request
func (rl *RateLimiter) Check(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) || entry.count < rl.config.Requests {
		return true, 0
	}
	return false, entry.expiresAt.Sub(now)
}

// Record counts one request for key
func (rl *RateLimiter) Record(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{count: 1, expiresAt: now.Add(rl.config.Window)}
		return
	}
	entry.count++
}

// Middleware rejects requests over the limit. HTMX requests get a form-level error fragment.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := rl.Allow(rl.config.KeyFunc(c))
			if ok {
				return next(c)
			}
			return rl.reject(c, retryAfter)
		}
	}
}

// SubmissionMiddleware limits accepted form submissions. Every request is checked against the
// window, but only requests the handler marks with MarkSubmissionAccepted are counted, so
// posts that come back with field errors never use up a visitor's allowance.
func (rl *RateLimiter) SubmissionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rl.config.KeyFunc(c)
			if ok, retryAfter := rl.Check(key); !ok {
				return rl.reject(c, retryAfter)
			}

			err := next(c)
			if accepted, _ := c.Get(ContextKeySubmissionAccepted).(bool); accepted {
				rl.Record(key)
			}
			return err
		}
	}
}

func (rl *RateLimiter) reject(c echo.Context, retryAfter time.Duration) error {
	c.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	if c.Request().Header.Get("HX-Request") == "true" {
		// app.js places this in the submitting form's error slot
		return c.HTML(http.StatusTooManyRequests, fmt.Sprintf(`<p class="form-error" role="alert">%s</p>`, html.EscapeString(rl.config.Message)))
	}
	return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
}

// ContextKeySubmissionAccepted is set once a form submission passed validation
const ContextKeySubmissionAccepted = "submission_accepted"

// MarkSubmissionAccepted tells SubmissionMiddleware to count the current request
func MarkSubmissionAccepted(c echo.Context) {
	c.Set(ContextKeySubmissionAccepted, true)
}

// Stop ends the cleanup loop
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// cleanup removes expired entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for key, entry := range rl.store {
				if now.After(entry.expiresAt) {
					delete(rl.store, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// LeadFormRateLimiter limits accepted lead form submissions to 5 per 10 minutes per IP
var LeadFormRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 5,
	Window:   10 * time.Minute,
	Message:  "Too many submissions. Please wait a few minutes before trying again.",
})

// ContactFormRateLimiter limits accepted contact form submissions to 5 per 10 minutes per IP
var ContactFormRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 5,
	Window:   10 * time.Minute,
	Message:  "Too many messages. Please wait a few minutes before trying again.",
})

// AdminRateLimiter limits admin requests, which also bounds basic auth guessing
var AdminRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 60,
	Window:   1 * time.Minute,
	Message:  "Rate limit exceeded. Please slow down your requests.",
})
