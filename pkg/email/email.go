package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

var GlobalEmailService *EmailService

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

type LeadNotificationData struct {
	ProjectName string
	LeadName    string
	LeadEmail   string
	LeadPhone   string
	LeadLang    string
	LeadMessage string
}

type LeadDigestData struct {
	Date         time.Time
	NewLeads     int64
	TotalLeads   int64
	Appointments int64
}

func InitEmailService(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return fmt.Errorf("error loading email templates: %v", err)
	}

	GlobalEmailService = &EmailService{
		apiKey:    apiKey,
		from:      "LuxRealty <noreply@luxrealty.co.il>",
		templates: templates,
	}
	return nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName+".html", data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("Resend API error: status %d, body %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}

	return nil
}

// SendLeadNotificationEmail tells an operator a new lead came in via the
// contact form.
func (s *EmailService) SendLeadNotificationEmail(to string, data LeadNotificationData) error {
	subject := "New lead: " + data.LeadName
	if data.ProjectName != "" {
		subject += " - " + data.ProjectName
	}
	return s.sendTemplateEmail(to, subject, "lead_notification", data)
}

// SendLeadDigestEmail daily summary of pipeline activity.
func (s *EmailService) SendLeadDigestEmail(to string, data LeadDigestData) error {
	subject := fmt.Sprintf("Lead digest for %s", data.Date.Format("January 2, 2006"))
	return s.sendTemplateEmail(to, subject, "lead_digest", data)
}
