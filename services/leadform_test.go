package services

import (
	"encoding/json"
	"net/url"
	"testing"

	"agenz_site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLeadForm() LeadForm {
	return LeadForm{
		FullName:        "Jane",
		Email:           "jane@co.my",
		Phone:           "+60 12-345 6789",
		CompanyName:     "Acme",
		ServiceInterest: "ai-chatbot",
		Budget:          "5k-15k",
		SourcePage:      "/pricing",
	}
}

func TestLeadFormValidate(t *testing.T) {
	t.Run("Valid form has no errors", func(t *testing.T) {
		assert.Empty(t, validLeadForm().Validate())
	})

	t.Run("Missing name only", func(t *testing.T) {
		f := LeadForm{Email: "a@b.com", Phone: "12345678", CompanyName: "Acme"}
		errs := f.Validate()
		assert.Equal(t, MsgFullNameRequired, errs.Get("fullName"))
		assert.False(t, errs.Has("email"))
		assert.False(t, errs.Has("phone"))
		assert.False(t, errs.Has("companyName"))
		// Selects are still required
		assert.Equal(t, MsgServiceRequired, errs.Get("serviceInterest"))
		assert.Equal(t, MsgBudgetRequired, errs.Get("budget"))
	})

	t.Run("Every required field missing", func(t *testing.T) {
		errs := LeadForm{}.Validate()
		assert.Len(t, errs, 6)
		assert.Equal(t, MsgEmailRequired, errs.Get("email"))
		assert.Equal(t, MsgPhoneRequired, errs.Get("phone"))
		assert.Equal(t, MsgCompanyRequired, errs.Get("companyName"))
	})

	t.Run("Optional fields are not required", func(t *testing.T) {
		f := validLeadForm()
		f.Website = ""
		f.Message = ""
		assert.Empty(t, f.Validate())
	})
}

func TestLeadEmailPattern(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@co.my", true},
		{"a@b.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"jane@co", false},
		{"jane.co.my", false},
		{"jane@@co.my", false},
		{"ja ne@co.my", false},
		{"ja\u00a0ne@co.my", false},
		{"jane@co\u2009.my", false},
		{"@co.my", false},
		{"jane@.my", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			f := validLeadForm()
			f.Email = tt.email
			errs := f.Validate()
			if tt.valid {
				assert.False(t, errs.Has("email"), "expected %q to be accepted", tt.email)
			} else {
				assert.Equal(t, MsgEmailInvalid, errs.Get("email"), "expected %q to be rejected", tt.email)
			}
		})
	}
}

func TestPhonePattern(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+60 12-345 6789", true},
		{"(03) 1234 5678", true},
		{"12345678", true},
		{"+60 12 ext. 5", false},
		{"012#3456", false},
		{"phone", false},
		{"12/34", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			f := validLeadForm()
			f.Phone = tt.phone
			errs := f.Validate()
			if tt.valid {
				assert.False(t, errs.Has("phone"))
			} else {
				assert.Equal(t, MsgPhoneInvalid, errs.Get("phone"))
			}
		})
	}
}

func TestParseLeadFormTrims(t *testing.T) {
	values := url.Values{
		"fullName":        {"  Jane  "},
		"email":           {" jane@co.my "},
		"phone":           {"+60 12-345 6789"},
		"companyName":     {"Acme\n"},
		"serviceInterest": {"automation"},
		"budget":          {"below-5k"},
		"sourcePage":      {"/services/ai-chatbot?utm=x"},
	}

	f := ParseLeadForm(values.Get)

	assert.Equal(t, "Jane", f.FullName)
	assert.Equal(t, "jane@co.my", f.Email)
	assert.Equal(t, "Acme", f.CompanyName)
	assert.Equal(t, "/services/ai-chatbot", f.SourcePage)
	assert.Empty(t, f.Validate())
}

func TestLeadFormSubmission(t *testing.T) {
	f := validLeadForm()
	f.ServiceInterest = "automation"
	f.Message = "Grow leads"

	sub, err := f.Submission()
	require.NoError(t, err)

	assert.Equal(t, models.FormTypeLead, sub.FormType)
	assert.Equal(t, "Jane", sub.Name)
	assert.Equal(t, "/pricing", sub.SourcePage)

	var body map[string]string
	require.NoError(t, json.Unmarshal(sub.Payload, &body))
	assert.Equal(t, "lead-form", body["formType"])
	assert.Equal(t, "Jane", body["fullName"])
	assert.Equal(t, "Acme", body["companyName"])
	assert.Equal(t, "Business Automation", body["serviceInterest"])
	assert.Equal(t, "RM 5,000 - RM 15,000", body["budget"])
	assert.Equal(t, "Grow leads", body["message"])
	assert.Equal(t, "/pricing", body["sourcePage"])
	assert.Contains(t, body, "website")
}

func TestLeadFormSubmissionUnknownOptionAndSource(t *testing.T) {
	f := validLeadForm()
	f.SourcePage = ""

	sub, err := f.Submission()
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(sub.Payload, &body))
	assert.Equal(t, "ai-chatbot", body["serviceInterest"], "unknown option falls back to raw value")
	assert.Equal(t, "unknown", body["sourcePage"])
}

func TestContactFormValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		f := ContactForm{Name: "Ali", Email: "ali@shop.my", Message: "Hello"}
		assert.Empty(t, f.Validate())
	})

	t.Run("Required fields", func(t *testing.T) {
		errs := ContactForm{}.Validate()
		assert.Equal(t, MsgNameRequired, errs.Get("name"))
		assert.Equal(t, MsgEmailRequired, errs.Get("email"))
		assert.Equal(t, MsgMessageRequired, errs.Get("message"))
		assert.False(t, errs.Has("phone"))
		assert.False(t, errs.Has("company"))
	})

	t.Run("Invalid email", func(t *testing.T) {
		errs := ContactForm{Name: "Ali", Email: "ali@shop", Message: "Hi"}.Validate()
		assert.Equal(t, MsgEmailInvalidContact, errs.Get("email"))
	})

	t.Run("Non-breaking space breaks the address", func(t *testing.T) {
		errs := ContactForm{Name: "Ali", Email: "ali\u00a0@shop\u00a0.my", Message: "Hi"}.Validate()
		assert.Equal(t, MsgEmailInvalidContact, errs.Get("email"))
	})

	t.Run("Phone may use non-breaking spaces", func(t *testing.T) {
		errs := ContactForm{Name: "Ali", Email: "ali@shop.my", Phone: "+60\u00a012-345\u00a06789", Message: "Hi"}.Validate()
		assert.False(t, errs.Has("phone"))
	})

	t.Run("Optional phone must still be well formed", func(t *testing.T) {
		errs := ContactForm{Name: "Ali", Email: "ali@shop.my", Phone: "call me", Message: "Hi"}.Validate()
		assert.Equal(t, MsgPhoneInvalid, errs.Get("phone"))
	})
}

func TestContactFormSubmission(t *testing.T) {
	f := ContactForm{Name: "Ali", Email: "ali@shop.my", Subject: "partnership", Message: "Let's work together"}

	sub, err := f.Submission()
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(sub.Payload, &body))
	assert.Equal(t, "contact-form", body["formType"])
	assert.Equal(t, "Ali", body["name"])
	assert.Equal(t, "partnership", body["subject"])
	assert.Equal(t, "/contact", body["sourcePage"])
	assert.Equal(t, models.FormTypeContact, sub.FormType)
}

func TestNormalizeSourcePage(t *testing.T) {
	tests := map[string]string{
		"":                       "",
		"/":                      "/",
		"/pricing":               "/pricing",
		"/blog/post?x=1#top":     "/blog/post",
		"https://evil.example/x": "",
		"//evil.example/x":       "",
		"pricing":                "",
		"  /case-studies  ":      "/case-studies",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeSourcePage(in), "input %q", in)
	}
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "Below RM 5,000", OptionLabel(BudgetOptions, "below-5k"))
	assert.Equal(t, "custom", OptionLabel(BudgetOptions, "custom"))
	assert.Equal(t, "", OptionLabel(SubjectOptions, ""))
}
