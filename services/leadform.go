package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"agenz_site/models"
)

// Validation message keys, resolved through i18n when rendered
const (
	MsgFullNameRequired    = "form.errors.full_name_required"
	MsgNameRequired        = "form.errors.name_required"
	MsgEmailRequired       = "form.errors.email_required"
	MsgEmailInvalid        = "form.errors.email_invalid"
	MsgEmailInvalidContact = "form.errors.email_invalid_contact"
	MsgPhoneRequired       = "form.errors.phone_required"
	MsgPhoneInvalid        = "form.errors.phone_invalid"
	MsgCompanyRequired     = "form.errors.company_required"
	MsgServiceRequired     = "form.errors.service_required"
	MsgBudgetRequired      = "form.errors.budget_required"
	MsgMessageRequired     = "form.errors.message_required"
)

// RE2's \s is ASCII only. Browsers treat Unicode separators and the BOM as whitespace too,
// so the classes below spell that set out.
var (
	// local@domain.tld, no whitespace, exactly one @ before the domain
	leadEmailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)
	// The contact form accepts any value containing something@something.something
	contactEmailPattern = regexp.MustCompile(`[^\s\p{Z}\x{FEFF}]+@[^\s\p{Z}\x{FEFF}]+\.[^\s\p{Z}\x{FEFF}]+`)
	phonePattern        = regexp.MustCompile(`^[\d\s\p{Z}\x{FEFF}\-+()]+$`)
)

// maxSourcePageLength bounds the sourcePage value that is echoed to the intake endpoint
const maxSourcePageLength = 200

// Option is a select option value with its human-readable label
type Option struct {
	Value string
	Label string
}

// ServiceOptions are the lead form's service choices
var ServiceOptions = []Option{
	{Value: "ai-creative", Label: "AI Creative Solutions"},
	{Value: "digital-marketing", Label: "Digital Marketing"},
	{Value: "web-solutions", Label: "Web Solutions"},
	{Value: "automation", Label: "Business Automation"},
	{Value: "full-service", Label: "Full Service / Not Sure"},
}

// BudgetOptions are the lead form's monthly budget choices
var BudgetOptions = []Option{
	{Value: "below-5k", Label: "Below RM 5,000"},
	{Value: "5k-15k", Label: "RM 5,000 - RM 15,000"},
	{Value: "15k-50k", Label: "RM 15,000 - RM 50,000"},
	{Value: "above-50k", Label: "Above RM 50,000"},
}

// SubjectOptions are the contact form's topics
var SubjectOptions = []Option{
	{Value: "general", Label: "General Inquiry"},
	{Value: "services", Label: "Services & Pricing"},
	{Value: "partnership", Label: "Partnership Opportunity"},
	{Value: "support", Label: "Support"},
	{Value: "other", Label: "Other"},
}

// OptionLabel returns the label for value, or value itself when it is not a known option
func OptionLabel(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// FieldErrors maps a form field (wire name) to a message key
type FieldErrors map[string]string

// Has reports whether field has an error
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Get returns the message key for field, or ""
func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

// Field is one labelled value of a submission, in payload order
type Field struct {
	Key   string
	Label string
	Value string
}

// Submission is a validated form ready for delivery to the intake endpoint
type Submission struct {
	FormType   string
	Name       string
	Email      string
	Phone      string
	Company    string
	SourcePage string
	Payload    []byte
	Fields     []Field
}

// LeadForm holds the lead-capture overlay values
type LeadForm struct {
	FullName        string
	Email           string
	Phone           string
	CompanyName     string
	Website         string
	ServiceInterest string
	Budget          string
	Message         string
	SourcePage      string
}

// LeadPayload is the JSON body of a lead-form submission
type LeadPayload struct {
	FormType        string `json:"formType"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CompanyName     string `json:"companyName"`
	Website         string `json:"website"`
	ServiceInterest string `json:"serviceInterest"`
	Budget          string `json:"budget"`
	Message         string `json:"message"`
	SourcePage      string `json:"sourcePage"`
}

// ParseLeadForm reads lead form values through get (typically echo's FormValue), trimming each
func ParseLeadForm(get func(string) string) LeadForm {
	return LeadForm{
		FullName:        strings.TrimSpace(get("fullName")),
		Email:           strings.TrimSpace(get("email")),
		Phone:           strings.TrimSpace(get("phone")),
		CompanyName:     strings.TrimSpace(get("companyName")),
		Website:         strings.TrimSpace(get("website")),
		ServiceInterest: strings.TrimSpace(get("serviceInterest")),
		Budget:          strings.TrimSpace(get("budget")),
		Message:         strings.TrimSpace(get("message")),
		SourcePage:      NormalizeSourcePage(get("sourcePage")),
	}
}

// Validate checks required fields and formats. An empty result means the form may be submitted.
func (f LeadForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if f.FullName == "" {
		errs["fullName"] = MsgFullNameRequired
	}

	if f.Email == "" {
		errs["email"] = MsgEmailRequired
	} else if !leadEmailPattern.MatchString(f.Email) {
		errs["email"] = MsgEmailInvalid
	}

	if f.Phone == "" {
		errs["phone"] = MsgPhoneRequired
	} else if !phonePattern.MatchString(f.Phone) {
		errs["phone"] = MsgPhoneInvalid
	}

	if f.CompanyName == "" {
		errs["companyName"] = MsgCompanyRequired
	}
	if f.ServiceInterest == "" {
		errs["serviceInterest"] = MsgServiceRequired
	}
	if f.Budget == "" {
		errs["budget"] = MsgBudgetRequired
	}

	return errs
}

// Submission builds the intake payload. Service and budget are sent as readable labels.
func (f LeadForm) Submission() (*Submission, error) {
	payload := LeadPayload{
		FormType:        models.FormTypeLead,
		FullName:        f.FullName,
		Email:           f.Email,
		Phone:           f.Phone,
		CompanyName:     f.CompanyName,
		Website:         f.Website,
		ServiceInterest: OptionLabel(ServiceOptions, f.ServiceInterest),
		Budget:          OptionLabel(BudgetOptions, f.Budget),
		Message:         f.Message,
		SourcePage:      sourceOrUnknown(f.SourcePage),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lead payload: %w", err)
	}

	return &Submission{
		FormType:   payload.FormType,
		Name:       payload.FullName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Company:    payload.CompanyName,
		SourcePage: payload.SourcePage,
		Payload:    body,
		Fields: []Field{
			{Key: "fullName", Label: "Full Name", Value: payload.FullName},
			{Key: "email", Label: "Email", Value: payload.Email},
			{Key: "phone", Label: "Phone", Value: payload.Phone},
			{Key: "companyName", Label: "Company Name", Value: payload.CompanyName},
			{Key: "website", Label: "Website", Value: payload.Website},
			{Key: "serviceInterest", Label: "Service Interest", Value: payload.ServiceInterest},
			{Key: "budget", Label: "Budget", Value: payload.Budget},
			{Key: "message", Label: "Message/Goals", Value: payload.Message},
			{Key: "sourcePage", Label: "Source Page", Value: payload.SourcePage},
		},
	}, nil
}

// ContactForm holds the contact page form values
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Subject string
	Message string
}

// ContactPayload is the JSON body of a contact-form submission
type ContactPayload struct {
	FormType   string `json:"formType"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	SourcePage string `json:"sourcePage"`
}

// ContactSourcePage is the fixed source of contact-form submissions
const ContactSourcePage = "/contact"

// ParseContactForm reads contact form values through get, trimming each
func ParseContactForm(get func(string) string) ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(get("name")),
		Email:   strings.TrimSpace(get("email")),
		Phone:   strings.TrimSpace(get("phone")),
		Company: strings.TrimSpace(get("company")),
		Subject: strings.TrimSpace(get("subject")),
		Message: strings.TrimSpace(get("message")),
	}
}

// Validate checks the contact form. Phone and company are optional; a phone, when given,
// must use the same character class as the lead form.
func (f ContactForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if f.Name == "" {
		errs["name"] = MsgNameRequired
	}

	if f.Email == "" {
		errs["email"] = MsgEmailRequired
	} else if !contactEmailPattern.MatchString(f.Email) {
		errs["email"] = MsgEmailInvalidContact
	}

	if f.Phone != "" && !phonePattern.MatchString(f.Phone) {
		errs["phone"] = MsgPhoneInvalid
	}

	if f.Message == "" {
		errs["message"] = MsgMessageRequired
	}

	return errs
}

// Submission builds the intake payload for the contact form
func (f ContactForm) Submission() (*Submission, error) {
	payload := ContactPayload{
		FormType:   models.FormTypeContact,
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Company:    f.Company,
		Subject:    f.Subject,
		Message:    f.Message,
		SourcePage: ContactSourcePage,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact payload: %w", err)
	}

	return &Submission{
		FormType:   payload.FormType,
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Company:    payload.Company,
		SourcePage: payload.SourcePage,
		Payload:    body,
		Fields: []Field{
			{Key: "name", Label: "Full Name", Value: payload.Name},
			{Key: "email", Label: "Email", Value: payload.Email},
			{Key: "phone", Label: "Phone", Value: payload.Phone},
			{Key: "company", Label: "Company Name", Value: payload.Company},
			{Key: "subject", Label: "Subject", Value: payload.Subject},
			{Key: "message", Label: "Message", Value: payload.Message},
			{Key: "sourcePage", Label: "Source Page", Value: payload.SourcePage},
		},
	}, nil
}

// NormalizeSourcePage keeps only the path of a same-site page reference.
// Anything that is not a local absolute path becomes "".
func NormalizeSourcePage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host != "" || u.Path == "" {
		return ""
	}
	if len(u.Path) > maxSourcePageLength {
		return u.Path[:maxSourcePageLength]
	}
	return u.Path
}

func sourceOrUnknown(page string) string {
	if page == "" {
		return "unknown"
	}
	return page
}
