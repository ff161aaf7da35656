package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"strings"
	texttemplate "text/template"

	"agenz_site/config"
	"agenz_site/models"

	"github.com/resend/resend-go/v2"
)

//go:embed emails/*.html emails/*.txt
var emailTemplates embed.FS

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// loadTemplate renders emails/<name>.html and emails/<name>.txt with data
func loadTemplate(templateName string, data interface{}) (html string, text string, err error) {
	htmlTmpl, err := template.ParseFS(emailTemplates, "emails/"+templateName+".html")
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.html: %w", templateName, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.html: %w", templateName, err)
	}

	textTmpl, err := texttemplate.ParseFS(emailTemplates, "emails/"+templateName+".txt")
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.txt: %w", templateName, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.txt: %w", templateName, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}

// SubmissionNotificationData is the template data of the operator notification
type SubmissionNotificationData struct {
	Heading string
	Fields  []Field
}

// BuildSubmissionNotificationEmail creates the operator notification for a submission.
// Only non-empty fields are listed.
func BuildSubmissionNotificationEmail(toEmail string, sub *Submission) *Email {
	subject := "New Submission: " + sub.Name
	switch sub.FormType {
	case models.FormTypeLead:
		subject = "New Lead: " + sub.Name
	case models.FormTypeContact:
		subject = "New Contact: " + sub.Name
	}

	data := SubmissionNotificationData{Heading: subject}
	for _, f := range sub.Fields {
		if strings.TrimSpace(f.Value) != "" {
			data.Fields = append(data.Fields, f)
		}
	}

	email := &Email{To: []string{toEmail}, Subject: subject}

	htmlBody, textBody, err := loadTemplate("submission_notification", data)
	if err != nil {
		log.Printf("Error loading submission_notification email template: %v", err)
		// Plain text fallback so the operator still gets the lead
		var b strings.Builder
		for _, f := range data.Fields {
			fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
		}
		email.TextBody = b.String()
		return email
	}

	email.HTMLBody = htmlBody
	email.TextBody = textBody
	return email
}
