package handlers

import (
	"log"
	"net/http"

	"agenz_site/middleware"
	"agenz_site/models"
	"agenz_site/services"
	"agenz_site/templates/components"
	"agenz_site/templates/pages"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

const msgCaptcha = "form.errors.captcha"

// LeadFormHandler returns a fresh lead form for the overlay. sourcePage records where it was opened.
func LeadFormHandler(c echo.Context) error {
	form := services.LeadForm{SourcePage: services.NormalizeSourcePage(c.QueryParam("sourcePage"))}
	return renderLead(c, http.StatusOK, components.LeadForm(newFormView(c, nil), form))
}

// LeadFormPostHandler validates and forwards a lead submission.
// Invalid input returns the form with inline errors; valid input returns the success state
// without waiting for the intake endpoint.
func LeadFormPostHandler(c echo.Context) error {
	form := services.ParseLeadForm(c.FormValue)

	if errs := form.Validate(); len(errs) > 0 {
		services.RecordValidationFailures(models.FormTypeLead, errs)
		return renderLead(c, http.StatusUnprocessableEntity, components.LeadForm(newFormView(c, errs), form))
	}

	if !verifyCaptcha(c) {
		view := newFormView(c, nil)
		view.FormError = msgCaptcha
		return renderLead(c, http.StatusUnprocessableEntity, components.LeadForm(view, form))
	}

	sub, err := form.Submission()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process submission")
	}
	middleware.MarkSubmissionAccepted(c)
	dispatch(c, sub)

	return renderLead(c, http.StatusOK, components.LeadFormSuccess(newFormView(c, nil).Locale))
}

// ContactFormHandler returns an empty contact form, used by "send another message"
func ContactFormHandler(c echo.Context) error {
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/contact")
	}
	return render(c, http.StatusOK, components.ContactForm(newFormView(c, nil), services.ContactForm{}))
}

// ContactHandler renders the contact page
func ContactHandler(c echo.Context) error {
	return renderContact(c, http.StatusOK, components.ContactForm(newFormView(c, nil), services.ContactForm{}))
}

// ContactPostHandler validates and forwards a contact-page message
func ContactPostHandler(c echo.Context) error {
	form := services.ParseContactForm(c.FormValue)

	if errs := form.Validate(); len(errs) > 0 {
		services.RecordValidationFailures(models.FormTypeContact, errs)
		return renderContact(c, http.StatusUnprocessableEntity, components.ContactForm(newFormView(c, errs), form))
	}

	if !verifyCaptcha(c) {
		view := newFormView(c, nil)
		view.FormError = msgCaptcha
		return renderContact(c, http.StatusUnprocessableEntity, components.ContactForm(view, form))
	}

	sub, err := form.Submission()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process submission")
	}
	middleware.MarkSubmissionAccepted(c)
	dispatch(c, sub)

	return renderContact(c, http.StatusOK, components.ContactFormSuccess(newFormView(c, nil).Locale))
}

// verifyCaptcha checks the Turnstile token. Without both keys the widget is not
// rendered, so there is no token to check.
func verifyCaptcha(c echo.Context) bool {
	cfg := getConfig(c)
	if !cfg.TurnstileEnabled() {
		return true
	}
	ok, err := services.VerifyTurnstileToken(c.Request().Context(), c.FormValue("cf-turnstile-response"), cfg.TurnstileSecretKey, c.RealIP())
	if err != nil {
		log.Printf("[WARNING] Turnstile verification failed for %s: %v", c.RealIP(), err)
	}
	return ok
}

func dispatch(c echo.Context, sub *services.Submission) {
	if Dispatcher == nil {
		log.Printf("[WARNING] No dispatcher configured, dropping %s submission", sub.FormType)
		return
	}
	Dispatcher.Dispatch(sub, c.RealIP(), c.Request().UserAgent())
}

// renderLead writes the lead fragment for HTMX, or a standalone page otherwise.
// HTMX only swaps 2xx responses by default, so fragments are always sent as 200.
func renderLead(c echo.Context, status int, fragment g.Node) error {
	if isHTMX(c) {
		return render(c, http.StatusOK, fragment)
	}
	return render(c, status, pages.LeadPage(newPage(c, models.DefaultSEO("Get a Free Consultation | Agenz", Content.Site.Description).WithNoIndex()), fragment))
}

func renderContact(c echo.Context, status int, fragment g.Node) error {
	if isHTMX(c) {
		return render(c, http.StatusOK, fragment)
	}
	return render(c, status, pages.Contact(newPage(c, GetSEO(getConfig(c), "contact")), Content.Site, fragment))
}
