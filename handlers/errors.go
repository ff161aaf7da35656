package handlers

import (
	"fmt"
	"html"
	"log"
	"net/http"

	"agenz_site/models"
	"agenz_site/templates/pages"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders branded error pages for browsers, a form-level
// message for HTMX requests, and echo's default response for everything else
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}

		if code >= 500 {
			log.Printf("[ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}

		var renderErr error
		switch {
		case isHTMX(c):
			if code >= 500 {
				message = "Something went wrong. Please try again."
			}
			renderErr = c.HTML(code, fmt.Sprintf(`<p class="form-error" role="alert">%s</p>`, html.EscapeString(message)))
		case Content != nil && code == http.StatusNotFound && c.Request().Method == http.MethodGet:
			renderErr = notFound(c)
		case Content != nil && code >= 500 && c.Request().Method == http.MethodGet:
			seo := models.DefaultSEO("Something went wrong | "+Content.Site.Name, Content.Site.Description).WithNoIndex()
			renderErr = render(c, code, pages.ServerError(newPage(c, seo)))
		default:
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		if renderErr != nil {
			log.Printf("[ERROR] Failed to render error page: %v", renderErr)
		}
	}
}
