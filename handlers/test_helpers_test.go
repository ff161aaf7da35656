package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"agenz_site/config"
	"agenz_site/content"
	"agenz_site/db"
	"agenz_site/models"
	"agenz_site/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, testDB.AutoMigrate(&models.LeadSubmission{}))

	// Set global DB
	db.DB = testDB
	t.Cleanup(func() { db.DB = nil })

	return testDB
}

func setupContent(t *testing.T) {
	t.Helper()
	store, err := content.Load()
	require.NoError(t, err)
	Content = store
}

// intakeRecorder is a fake intake endpoint that keeps every JSON body it receives
type intakeRecorder struct {
	mu     sync.Mutex
	bodies []map[string]interface{}
	status int
}

func (r *intakeRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(req.Body).Decode(&body)
	r.mu.Lock()
	r.bodies = append(r.bodies, body)
	r.mu.Unlock()
	if r.status != 0 {
		w.WriteHeader(r.status)
		return
	}
	_, _ = io.WriteString(w, `{"result":"success"}`)
}

func (r *intakeRecorder) received() []map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]map[string]interface{}(nil), r.bodies...)
}

// setupIntake starts a fake intake endpoint and installs a dispatcher pointed at it
func setupIntake(t *testing.T, database *gorm.DB) (*intakeRecorder, *config.Config) {
	t.Helper()
	rec := &intakeRecorder{}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.IntakeURL = srv.URL
	Dispatcher = services.NewDispatcher(cfg, database)
	t.Cleanup(func() { Dispatcher = nil })
	return rec, cfg
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		AppURL:      "https://agenz.test",
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// formRequest builds a POST context carrying values as an urlencoded body
func formRequest(path string, values url.Values, htmx bool) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(http.MethodPost, path, strings.NewReader(values.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		c.Request().Header.Set("HX-Request", "true")
	}
	return c, rec
}
