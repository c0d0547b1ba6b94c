package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

var ErrMissingWhatsAppAPIURL = errors.New("missing WHATSAPP_API_URL")

// defaultCountryCode is prepended to bare local-format numbers (Peru).
const defaultCountryCode = "51"

// WhatsAppNotifier sends outbound messages through an HTTP WhatsApp
// gateway. Delivery is best-effort: callers treat Send failures as
// log-and-continue, never as request failures.

type WhatsAppNotifier struct {
	apiURL      string
	token       string
	countryCode string
	httpClient  *http.Client
}

func NewWhatsAppNotifier(apiURL, token, countryCode string) (*WhatsAppNotifier, error) {
	if strings.TrimSpace(apiURL) == "" {
		log.Printf("[notify][gateway] missing WHATSAPP_API_URL")
		return nil, ErrMissingWhatsAppAPIURL
	}
	if countryCode == "" {
		countryCode = defaultCountryCode
	}
	return &WhatsAppNotifier{
		apiURL:      strings.TrimSpace(apiURL),
		token:       token,
		countryCode: countryCode,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type outboundMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (n *WhatsAppNotifier) Send(ctx context.Context, phone, message string) error {
	dest := n.NormalizePhone(phone)
	if dest == "" {
		return fmt.Errorf("no usable destination in phone %q", phone)
	}

	body, err := json.Marshal(outboundMessage{Phone: dest, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	log.Printf("[notify][gateway] message sent phone=%s len=%d", dest, len(message))
	return nil
}

// NormalizePhone reduces a phone number to digits and prepends the country
// code when a bare 9-digit local number is supplied ("987654321" ->
// "51987654321"). Already-prefixed numbers pass through unchanged.
func (n *WhatsAppNotifier) NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	// A 9-digit number is always a bare local number, even when it happens
	// to start with the country code digits.
	if len(digits) == 9 {
		return n.countryCode + digits
	}
	return digits
}
