package middleware

import (
	"log"
	"net/http"

	"agenz_site/config"
	"agenz_site/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// ContextKeyAdmin is the context key holding the authenticated admin username
const ContextKeyAdmin = "admin"

// AdminAuth guards the admin area with HTTP basic auth against the configured
// username and bcrypt password hash. IPs with repeated failures are locked out for a while.
func AdminAuth(cfg *config.Config) echo.MiddlewareFunc {
	return adminAuth(cfg, services.NewLoginMonitor(cfg))
}

func adminAuth(cfg *config.Config, monitor *services.LoginMonitor) echo.MiddlewareFunc {
	return echomiddleware.BasicAuthWithConfig(echomiddleware.BasicAuthConfig{
		Realm: "Agenz Admin",
		Validator: func(username, password string, c echo.Context) (bool, error) {
			ip := c.RealIP()
			if monitor.IsBlocked(ip) {
				return false, echo.NewHTTPError(http.StatusTooManyRequests, "Too many failed logins. Try again later.")
			}
			if !services.CheckAdminCredentials(username, password, cfg.AdminUsername, cfg.AdminPasswordHash) {
				log.Printf("[SECURITY] Failed admin login from %s", ip)
				monitor.TrackFailedLogin(ip)
				return false, nil
			}
			c.Set(ContextKeyAdmin, username)
			return true, nil
		},
	})
}
