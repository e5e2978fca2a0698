package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"jobboard-backend/config"
)

// EmailService sends interview lifecycle emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// InterviewEmailData holds the data for interview notification emails
type InterviewEmailData struct {
	RecipientName string
	JobTitle      string
	Headline      string // e.g. "Interview Scheduled"
	Body          string // event-specific sentence
	ScheduledAt   string
	MeetingLink   string
	Location      string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured reports whether the SMTP credentials are present
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

const interviewEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Headline}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Headline}}</h1>
        </div>
        <div class="content">
            <p>Hi {{.RecipientName}},</p>
            <p>{{.Body}}</p>
            <div class="field">
                <span class="label">Position:</span> {{.JobTitle}}
            </div>
            {{if .ScheduledAt}}<div class="field">
                <span class="label">When:</span> {{.ScheduledAt}}
            </div>{{end}}
            {{if .MeetingLink}}<div class="field">
                <span class="label">Meeting link:</span> <a href="{{.MeetingLink}}">{{.MeetingLink}}</a>
            </div>{{end}}
            {{if .Location}}<div class="field">
                <span class="label">Location:</span> {{.Location}}
            </div>{{end}}
        </div>
        <div class="footer">
            <p>You are receiving this email because of activity on your job board account.</p>
        </div>
    </div>
</body>
</html>`

// SendInterviewEmail sends an interview lifecycle email to the given address
func (s *EmailService) SendInterviewEmail(to string, data InterviewEmailData) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	tmpl, err := template.New("interview").Parse(interviewEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.fromEmail))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", data.Headline))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg.Bytes())
}
