package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase/interfaces"
)

var (
	ErrInvalidDepositAmount       = errors.New("invalid deposit amount")
	ErrPaymentNotApproved         = errors.New("payment not approved by provider")
	ErrPaymentGatewayNotSet       = errors.New("payment gateway not configured")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayNotFound     = errors.New("payment not found at provider")
)

// DepositCommand is one confirmed payment event to merge into the ledger.
//
// When ProviderPaymentID is set the payment is verified against the
// provider and the verified amount wins over Amount. Total is optional: 0
// means "keep the total already owed on the client's row".

type DepositCommand struct {
	Name              string
	Phone             string
	Detail            string
	Total             float64
	Amount            float64
	ProviderPaymentID string
}

// IDepositUseCase registers deposit payments against client balances.

type IDepositUseCase interface {
	RegisterDeposit(ctx context.Context, cmd DepositCommand) (entities.ClientBalance, error)
}

type DepositUseCase struct {
	ledger   ILedgerUseCase
	gateway  interfaces.IPaymentGateway
	notifier interfaces.INotifier
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(ledger ILedgerUseCase, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier) *DepositUseCase {
	return &DepositUseCase{ledger: ledger, gateway: gateway, notifier: notifier}
}

// RegisterDeposit verifies the payment when a provider id is present, then
// increments the client's paid deposit and recomputes the balance.
func (u *DepositUseCase) RegisterDeposit(ctx context.Context, cmd DepositCommand) (entities.ClientBalance, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.Name == "" {
		return entities.ClientBalance{}, ErrInvalidClientName
	}

	amount := cmd.Amount
	providerID := strings.TrimSpace(cmd.ProviderPaymentID)
	if providerID != "" {
		if u.gateway == nil {
			log.Printf("[deposit][usecase] gateway not configured client=%s provider_payment_id=%s", cmd.Name, providerID)
			return entities.ClientBalance{}, ErrPaymentGatewayNotSet
		}

		log.Printf("[deposit][usecase] verifying payment client=%s provider_payment_id=%s", cmd.Name, providerID)
		verifiedAmount, providerStatus, _, err := u.gateway.GetPayment(ctx, providerID)
		if err != nil {
			log.Printf("[deposit][usecase] payment verification failed client=%s provider_payment_id=%s err=%v", cmd.Name, providerID, err)
			return entities.ClientBalance{}, classifyGatewayError(err)
		}
		if providerStatus != "approved" {
			log.Printf("[deposit][usecase] payment not approved client=%s provider_payment_id=%s status=%s", cmd.Name, providerID, providerStatus)
			return entities.ClientBalance{}, ErrPaymentNotApproved
		}
		// The provider amount is the source of truth; fall back to the
		// stated amount only when the provider reports none (mock mode).
		if verifiedAmount > 0 {
			amount = verifiedAmount
		}
	}

	if amount <= 0 {
		return entities.ClientBalance{}, ErrInvalidDepositAmount
	}

	balance, err := u.ledger.Upsert(ctx, cmd.Name, cmd.Phone, cmd.Detail, cmd.Total, amount)
	if err != nil {
		return entities.ClientBalance{}, err
	}
	log.Printf("[deposit][usecase] deposit registered client=%s amount=%.2f balance_due=%.2f status=%s", cmd.Name, amount, balance.BalanceDue, balance.Status)

	if u.notifier != nil && cmd.Phone != "" {
		msg := fmt.Sprintf("Hola %s, registramos tu abono de S/ %.2f. Saldo pendiente: S/ %.2f (%s).", cmd.Name, amount, balance.BalanceDue, balance.Status)
		if err := u.notifier.Send(ctx, cmd.Phone, msg); err != nil {
			log.Printf("[deposit][usecase] notification failed client=%s err=%v", cmd.Name, err)
		}
	}

	return balance, nil
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"not_found\"") || strings.Contains(msg, "\"status\":404"):
		return ErrPaymentGatewayNotFound
	default:
		return err
	}
}
