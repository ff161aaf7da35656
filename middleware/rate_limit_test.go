package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})
	defer rl.Stop()

	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestRateLimiterAllowWindow(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
	defer rl.Stop()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("1.2.3.4")
	assert.True(t, ok)
	ok, _ = rl.Allow("1.2.3.4")
	assert.True(t, ok)

	ok, retry := rl.Allow("1.2.3.4")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)

	// Other keys are counted separately
	ok, _ = rl.Allow("5.6.7.8")
	assert.True(t, ok)

	now = now.Add(61 * time.Second)
	ok, _ = rl.Allow("1.2.3.4")
	assert.True(t, ok)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()

	newHandler := func(rl *RateLimiter) echo.HandlerFunc {
		return rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})
	}

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Second})
		defer rl.Stop()
		handler := newHandler(rl)

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/lead-form", nil), rec)
			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
		defer rl.Stop()
		handler := newHandler(rl)

		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		require.NoError(t, handler(c))

		rec := httptest.NewRecorder()
		c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		err := handler(c)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("HXRequestExceeded", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Second, Message: "Slow <down>"})
		defer rl.Stop()
		handler := newHandler(rl)

		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		require.NoError(t, handler(c))

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		c = e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), `class="form-error"`)
		assert.Contains(t, rec.Body.String(), "Slow &lt;down&gt;")
	})
}

func TestRateLimiterCheckDoesNotCount(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		ok, _ := rl.Check("1.2.3.4")
		assert.True(t, ok)
	}

	rl.Record("1.2.3.4")
	ok, retry := rl.Check("1.2.3.4")
	assert.False(t, ok)
	assert.Greater(t, retry, time.Duration(0))
}

func TestRateLimiterSubmissionMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
	defer rl.Stop()

	handler := rl.SubmissionMiddleware()(func(c echo.Context) error {
		if c.FormValue("valid") == "1" {
			MarkSubmissionAccepted(c)
		}
		return c.String(http.StatusOK, "done")
	})

	post := func(valid bool) (*httptest.ResponseRecorder, error) {
		target := "/contact"
		if valid {
			target += "?valid=1"
		}
		rec := httptest.NewRecorder()
		return rec, handler(e.NewContext(httptest.NewRequest(http.MethodPost, target, nil), rec))
	}

	for i := 0; i < 10; i++ {
		rec, err := post(false)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	for i := 0; i < 2; i++ {
		rec, err := post(true)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec, err := post(true)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, he.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiterStopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Second})
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
