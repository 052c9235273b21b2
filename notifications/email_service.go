package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/kiprono589/savanna_tours/configs"
)

type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

var EmailClient *BrevoService

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Booking and inquiry notifications are disabled.")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
	}
	log.Println("✅ Email service initialised")
}

// SendEmail delivers a transactional email through Brevo. Failures are logged
// and swallowed; notification delivery never blocks a submission.
func SendEmail(toName, toEmail, subject, htmlContent string) {
	if EmailClient == nil {
		log.Printf("Email skipped (service not configured): %s -> %s", subject, toEmail)
		return
	}

	payload := brevoPayload{
		Sender: map[string]string{
			"name":  EmailClient.SenderName,
			"email": EmailClient.SenderEmail,
		},
		To: []map[string]string{
			{"name": toName, "email": toEmail},
		},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("🔥 Failed to marshal email payload: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.brevo.com/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		log.Printf("🔥 Failed to build email request: %v", err)
		return
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", EmailClient.APIKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", toEmail, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("🔥 Brevo rejected email to %s: %d %s", toEmail, resp.StatusCode, strings.TrimSpace(string(respBody)))
		return
	}
}

func BookingReceivedEmail(reference, packageTitle string) (string, string) {
	subject := "We received your safari booking"
	body := fmt.Sprintf("<h1>Booking Received</h1><p>Thank you for booking <b>%s</b>.</p><p>Your reference is <b>%s</b>. Our team will confirm availability and get back to you shortly.</p>", packageTitle, reference)
	return subject, body
}

func BookingConfirmedEmail(reference, packageTitle string) (string, string) {
	subject := "Your safari booking is confirmed"
	body := fmt.Sprintf("<h1>Booking Confirmed</h1><p>Your booking <b>%s</b> for <b>%s</b> is confirmed. We look forward to hosting you!</p>", reference, packageTitle)
	return subject, body
}

func InquiryReceivedEmail(name string) (string, string) {
	subject := "We received your inquiry"
	body := fmt.Sprintf("<h1>Thank you, %s</h1><p>Your inquiry has reached our safari desk. A consultant will respond within one business day.</p>", name)
	return subject, body
}
