package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/avelier/photography-site-backend/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendContactRequest represents the request payload for the Resend
// audiences contacts API
type ResendContactRequest struct {
	Email        string `json:"email"`
	Unsubscribed bool   `json:"unsubscribed"`
}

// ResendContactResponse represents the response from the Resend API
type ResendContactResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// MailingList pushes subscribe-form signups to a Resend audience.
//
// Requires environment variables:
//   - RESEND_API_KEY: the Resend API key
//   - RESEND_AUDIENCE_ID: the audience to add contacts to
//
// When either is missing the client is disabled: signups are still recorded
// locally and the feature degrades instead of failing the request.
type MailingList struct {
	apiKey     string
	audienceID string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewMailingList(cfg map[string]string) *MailingList {
	logger := log.With().Str("service", "mailingList").Logger()

	ml := &MailingList{
		apiKey:     config.GetString(cfg, "RESEND_API_KEY", ""),
		audienceID: config.GetString(cfg, "RESEND_AUDIENCE_ID", ""),
		baseURL:    config.GetString(cfg, "RESEND_BASE_URL", defaultResendBaseURL),
		httpClient: &http.Client{},
		logger:     logger,
	}
	if !ml.Enabled() {
		logger.Warn().Msg("Mailing list credentials missing, signups will only be recorded locally")
	}
	return ml
}

// Enabled reports whether the third-party list is configured.
func (m *MailingList) Enabled() bool {
	return m.apiKey != "" && m.audienceID != ""
}

// AddContact adds an email address to the configured audience.
func (m *MailingList) AddContact(ctx context.Context, email string) error {
	if !m.Enabled() {
		return fmt.Errorf("mailing list is not configured")
	}

	payload := ResendContactRequest{Email: email}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal contact payload: %w", err)
	}

	url := fmt.Sprintf("%s/audiences/%s/contacts", m.baseURL, m.audienceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var contactResp ResendContactResponse
	if err := json.Unmarshal(bodyBytes, &contactResp); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to parse Resend contact response, but contact was added")
	} else {
		m.logger.Info().Str("contactId", contactResp.ID).Msg("Added contact to mailing list")
	}

	return nil
}
