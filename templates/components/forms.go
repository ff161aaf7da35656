package components

import (
	"agenz_site/services"
	"agenz_site/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FormView carries a form's values and state into its fragment
type FormView struct {
	Locale           string
	CSRFToken        string
	TurnstileSiteKey string
	Errors           services.FieldErrors
	FormError        string // message key shown above the submit button
}

func (v FormView) t(key string) string {
	return i18n.Translate(v.Locale, key)
}

// fieldError returns the translated error for field, or "" when it is valid
func (v FormView) fieldError(field string) string {
	if !v.Errors.Has(field) {
		return ""
	}
	return v.t(v.Errors.Get(field))
}

type inputSpec struct {
	name, label, placeholder, value, kind, autocomplete string
	required                                            bool
}

func (v FormView) input(prefix string, in inputSpec) g.Node {
	id := prefix + "-" + in.name
	errText := v.fieldError(in.name)
	if in.kind == "" {
		in.kind = "text"
	}
	return h.Div(
		h.Class(classes("field", errorClass(errText))),
		fieldLabel(v, id, in.label, in.required),
		h.Input(
			h.ID(id),
			h.Name(in.name),
			h.Type(in.kind),
			h.Value(in.value),
			g.If(in.placeholder != "", h.Placeholder(in.placeholder)),
			g.If(in.autocomplete != "", h.AutoComplete(in.autocomplete)),
			g.If(errText != "", g.Group([]g.Node{
				g.Attr("aria-invalid", "true"),
				g.Attr("aria-describedby", id+"-error"),
			})),
		),
		errorText(id, errText),
	)
}

type selectSpec struct {
	name, label, placeholder, value string
	options                         []services.Option
	required                        bool
}

func (v FormView) selectInput(prefix string, s selectSpec) g.Node {
	id := prefix + "-" + s.name
	errText := v.fieldError(s.name)
	return h.Div(
		h.Class(classes("field", errorClass(errText))),
		fieldLabel(v, id, s.label, s.required),
		h.Select(
			h.ID(id),
			h.Name(s.name),
			g.If(errText != "", g.Group([]g.Node{
				g.Attr("aria-invalid", "true"),
				g.Attr("aria-describedby", id+"-error"),
			})),
			h.Option(h.Value(""), g.If(s.value == "", h.Selected()), g.Text(s.placeholder)),
			g.Group(g.Map(s.options, func(opt services.Option) g.Node {
				return h.Option(h.Value(opt.Value), g.If(opt.Value == s.value, h.Selected()), g.Text(opt.Label))
			})),
		),
		errorText(id, errText),
	)
}

func (v FormView) textarea(prefix, name, label, placeholder, value string, required bool) g.Node {
	id := prefix + "-" + name
	errText := v.fieldError(name)
	return h.Div(
		h.Class(classes("field", errorClass(errText))),
		fieldLabel(v, id, label, required),
		h.Textarea(
			h.ID(id),
			h.Name(name),
			h.Rows("4"),
			h.Placeholder(placeholder),
			g.If(errText != "", g.Attr("aria-invalid", "true")),
			g.Text(value),
		),
		errorText(id, errText),
	)
}

func fieldLabel(v FormView, id, label string, required bool) g.Node {
	return h.Label(
		h.For(id),
		g.Text(label),
		g.If(required, h.Span(h.Class("required"), g.Attr("aria-hidden", "true"), g.Text(" *"))),
		g.If(!required, h.Span(h.Class("optional"), g.Text(" "+v.t("form.fields.optional")))),
	)
}

func errorClass(errText string) string {
	if errText == "" {
		return ""
	}
	return "has-error"
}

func errorText(id, errText string) g.Node {
	if errText == "" {
		return nil
	}
	return h.P(h.ID(id+"-error"), h.Class("field-error"), g.Text(errText))
}

func (v FormView) turnstile() g.Node {
	if v.TurnstileSiteKey == "" {
		return nil
	}
	return h.Div(h.Class("cf-turnstile"), g.Attr("data-sitekey", v.TurnstileSiteKey))
}

func (v FormView) formError() g.Node {
	return h.Div(
		h.Class("form-error-slot"),
		g.If(v.FormError != "", h.P(h.Class("form-error"), g.Attr("role", "alert"), g.Text(v.t(v.FormError)))),
	)
}

func submitButton(label, busyLabel string) g.Node {
	return h.Button(
		h.Type("submit"),
		h.Class("btn btn-primary btn-block"),
		h.Span(h.Class("when-idle"), g.Text(label)),
		h.Span(h.Class("when-busy"), g.Text(busyLabel)),
	)
}

// LeadModal is the overlay shell; its body is fetched fresh every time it opens
func LeadModal(p Page) g.Node {
	return h.Div(
		h.ID("lead-modal"),
		h.Class("modal"),
		g.Attr("hidden", ""),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", "lead-form-title"),
		h.Div(h.Class("modal-backdrop"), g.Attr("data-lead-close", "")),
		h.Div(
			h.Class("modal-panel"),
			h.Button(
				h.Type("button"),
				h.Class("modal-close"),
				g.Attr("data-lead-close", ""),
				Icon("x", "", p.T("form.close")),
			),
			h.Div(h.ID("lead-modal-body")),
		),
	)
}

// LeadForm renders the lead-capture form with its current values and errors
func LeadForm(v FormView, f services.LeadForm) g.Node {
	const prefix = "lead"
	return h.Form(
		h.ID("lead-form"),
		h.Class("lead-form"),
		h.Method("post"),
		h.Action("/lead-form"),
		g.Attr("novalidate", ""),
		g.Attr("hx-post", "/lead-form"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		h.Div(
			h.Class("form-header"),
			h.H2(h.ID("lead-form-title"), g.Text(v.t("form.lead.title"))),
			h.P(g.Text(v.t("form.lead.subtitle"))),
		),
		CSRFField(v.CSRFToken),
		h.Input(h.Type("hidden"), h.Name("sourcePage"), h.Value(f.SourcePage)),
		h.Div(
			h.Class("form-grid"),
			v.input(prefix, inputSpec{name: "fullName", label: v.t("form.fields.full_name"), placeholder: v.t("form.placeholders.full_name"), value: f.FullName, autocomplete: "name", required: true}),
			v.input(prefix, inputSpec{name: "email", label: v.t("form.fields.email"), placeholder: v.t("form.placeholders.email"), value: f.Email, kind: "email", autocomplete: "email", required: true}),
			v.input(prefix, inputSpec{name: "phone", label: v.t("form.fields.phone"), placeholder: v.t("form.placeholders.phone"), value: f.Phone, kind: "tel", autocomplete: "tel", required: true}),
			v.input(prefix, inputSpec{name: "companyName", label: v.t("form.fields.company"), placeholder: v.t("form.placeholders.company"), value: f.CompanyName, autocomplete: "organization", required: true}),
			v.input(prefix, inputSpec{name: "website", label: v.t("form.fields.website"), placeholder: v.t("form.placeholders.website"), value: f.Website, kind: "url", autocomplete: "url"}),
			v.selectInput(prefix, selectSpec{name: "serviceInterest", label: v.t("form.fields.service_interest"), placeholder: v.t("form.placeholders.service"), value: f.ServiceInterest, options: services.ServiceOptions, required: true}),
			v.selectInput(prefix, selectSpec{name: "budget", label: v.t("form.fields.budget"), placeholder: v.t("form.placeholders.budget"), value: f.Budget, options: services.BudgetOptions, required: true}),
		),
		v.textarea(prefix, "message", v.t("form.fields.goals"), v.t("form.placeholders.goals"), f.Message, false),
		v.turnstile(),
		v.formError(),
		submitButton(v.t("form.lead.submit"), v.t("form.lead.submitting")),
		h.P(h.Class("form-consent"), g.Text(v.t("form.consent"))),
	)
}

// LeadFormSuccess replaces the lead form once a submission is accepted
func LeadFormSuccess(locale string) g.Node {
	t := func(key string) string { return i18n.Translate(locale, key) }
	return h.Div(
		h.ID("lead-form"),
		h.Class("form-success"),
		g.Attr("role", "status"),
		Icon("circle-check", "success-icon", ""),
		h.H2(g.Text(t("form.lead.success_title"))),
		h.P(g.Text(t("form.lead.success_body"))),
		h.Button(h.Type("button"), h.Class("btn btn-secondary"), g.Attr("data-lead-close", ""), g.Text(t("form.close"))),
	)
}

// ContactForm renders the contact page form
func ContactForm(v FormView, f services.ContactForm) g.Node {
	const prefix = "contact"
	return h.Form(
		h.ID("contact-form"),
		h.Class("contact-form"),
		h.Method("post"),
		h.Action("/contact"),
		g.Attr("novalidate", ""),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		h.H2(g.Text(v.t("form.contact.title"))),
		CSRFField(v.CSRFToken),
		h.Div(
			h.Class("form-grid"),
			v.input(prefix, inputSpec{name: "name", label: v.t("form.fields.full_name"), placeholder: v.t("form.placeholders.full_name"), value: f.Name, autocomplete: "name", required: true}),
			v.input(prefix, inputSpec{name: "email", label: v.t("form.fields.email"), placeholder: v.t("form.placeholders.email"), value: f.Email, kind: "email", autocomplete: "email", required: true}),
			v.input(prefix, inputSpec{name: "phone", label: v.t("form.fields.phone"), placeholder: v.t("form.placeholders.phone"), value: f.Phone, kind: "tel", autocomplete: "tel"}),
			v.input(prefix, inputSpec{name: "company", label: v.t("form.fields.company"), placeholder: v.t("form.placeholders.company"), value: f.Company, autocomplete: "organization"}),
		),
		v.selectInput(prefix, selectSpec{name: "subject", label: v.t("form.fields.subject"), placeholder: v.t("form.placeholders.subject"), value: f.Subject, options: services.SubjectOptions}),
		v.textarea(prefix, "message", v.t("form.fields.message"), v.t("form.placeholders.message"), f.Message, true),
		v.turnstile(),
		v.formError(),
		submitButton(v.t("form.contact.submit"), v.t("form.contact.submitting")),
	)
}

// ContactFormSuccess replaces the contact form and offers a fresh one
func ContactFormSuccess(locale string) g.Node {
	t := func(key string) string { return i18n.Translate(locale, key) }
	return h.Div(
		h.ID("contact-form"),
		h.Class("form-success"),
		g.Attr("role", "status"),
		Icon("circle-check", "success-icon", ""),
		h.H2(g.Text(t("form.contact.success_title"))),
		h.P(g.Text(t("form.contact.success_body"))),
		h.Button(
			h.Type("button"),
			h.Class("btn btn-secondary"),
			g.Attr("hx-get", "/contact/form"),
			g.Attr("hx-target", "#contact-form"),
			g.Attr("hx-swap", "outerHTML"),
			g.Text(t("form.contact.send_another")),
		),
	)
}
