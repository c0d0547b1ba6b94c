package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderPaymentID        = errors.New("invalid provider payment id")
)

// MercadoPagoGateway verifies deposit payments against Mercado Pago.
//
// The deposit flow never creates payments: clients pay through the bot's
// checkout link and we only confirm amount/approval before touching the
// ledger. Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) approves any
// payment id with no amount, for local runs without provider credentials.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (float64, string, json.RawMessage, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock get provider_payment_id=%s", providerPaymentID)
		raw, err := json.Marshal(map[string]any{
			"id":            providerPaymentID,
			"status":        "approved",
			"status_detail": "accredited",
		})
		if err != nil {
			return 0, "", nil, err
		}
		return 0, "approved", raw, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return 0, "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		log.Printf("[payment][gateway] non-numeric provider_payment_id=%q", providerPaymentID)
		return 0, "", nil, ErrInvalidProviderPaymentID
	}

	log.Printf("[payment][gateway] get start provider_payment_id=%d", id)
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return 0, "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return 0, "", nil, err
	}
	log.Printf("[payment][gateway] get success provider_payment_id=%d status=%s amount=%.2f", id, resp.Status, resp.TransactionAmount)

	return resp.TransactionAmount, resp.Status, raw, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
