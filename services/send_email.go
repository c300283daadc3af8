package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// ContactMessage is a contact-form submission relayed to the site owner.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// SendContactEmail relays a contact-form message to the site owner through
// the Resend API. There is no delivery confirmation beyond the send call
// itself succeeding.
//
// Required environment variables:
//   - RESEND_API_KEY: the Resend API key
//   - RESEND_FROM_EMAIL: the sender address (e.g. "Portfolio Contact <contact@example.com>")
//   - CONTACT_TO_EMAIL: the site owner's address
func SendContactEmail(ctx context.Context, msg ContactMessage) error {
	cfg := config.New()

	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return fmt.Errorf("RESEND_FROM_EMAIL environment variable is required")
	}

	toEmail := config.GetString(cfg, "CONTACT_TO_EMAIL", "")
	if toEmail == "" {
		return fmt.Errorf("CONTACT_TO_EMAIL environment variable is required")
	}

	payload := ResendEmailRequest{
		From:    fromEmail,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("New Contact from %s", msg.Name),
		Text:    contactText(msg),
		Html:    contactHTML(msg),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent contact email via Resend")
	}

	return nil
}

func contactText(msg ContactMessage) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s\n", msg.Name, msg.Email, msg.Message)
}

// contactHTML escapes the submitted values before interpolating them, the
// form is open to anyone.
func contactHTML(msg ContactMessage) string {
	htmlMessage := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px;">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <p style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">%s</p>
</div>`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), htmlMessage)
}
