package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"decora_ambientes/internal/domain/entities"
	"decora_ambientes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientName = errors.New("invalid client name")
	ErrNoItems           = errors.New("no line items requested")
	ErrNoPricingFound    = errors.New("no pricing found for any requested item")
)

// QuoteClient identifies the requester of a quotation.

type QuoteClient struct {
	Name     string
	Phone    string
	District string
}

// QuoteResult is the outcome of one quote request: the priced quotation and
// the client's reconciled ledger row.

type QuoteResult struct {
	Quotation entities.Quotation
	Balance   entities.ClientBalance
}

// IQuoteUseCase exposes the quotation request/response cycle: price table
// load, line item resolution, ledger reconciliation and notification.

type IQuoteUseCase interface {
	RequestQuote(ctx context.Context, client QuoteClient, items []entities.LineItemRequest) (QuoteResult, error)
}

type QuoteUseCase struct {
	prices   interfaces.IPriceSource
	quotes   interfaces.IQuotationRepository
	ledger   ILedgerUseCase
	notifier interfaces.INotifier
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(prices interfaces.IPriceSource, quotes interfaces.IQuotationRepository, ledger ILedgerUseCase, notifier interfaces.INotifier) *QuoteUseCase {
	return &QuoteUseCase{prices: prices, quotes: quotes, ledger: ledger, notifier: notifier}
}

// RequestQuote runs one full pricing cycle. The price table is re-fetched
// from the source on every call; nothing is cached between requests.
//
// Per-item misses are recovered locally (reported as found=false); the
// request as a whole fails only when no item at all matched. Source/ledger
// store failures propagate unmodified, with no retry.
func (u *QuoteUseCase) RequestQuote(ctx context.Context, client QuoteClient, items []entities.LineItemRequest) (QuoteResult, error) {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return QuoteResult{}, ErrInvalidClientName
	}
	if len(items) == 0 {
		return QuoteResult{}, ErrNoItems
	}

	rows, err := u.prices.FetchRows(ctx)
	if err != nil {
		log.Printf("[quote][usecase] price source fetch failed client=%s err=%v", client.Name, err)
		return QuoteResult{}, err
	}

	table := entities.BuildPriceTable(rows)
	quotation := ResolveLineItems(items, table)
	if quotation.MatchedCount() == 0 {
		log.Printf("[quote][usecase] no pricing found client=%s items=%d table_rows=%d", client.Name, len(items), table.Len())
		return QuoteResult{}, ErrNoPricingFound
	}

	detail := describeLineItems(quotation.LineItems, client.District)

	// Quotation audit record is best-effort: a failure to append must not
	// void a quotation the client already saw.
	if u.quotes != nil {
		record := entities.QuotationRecord{
			ID:          uuid.NewString(),
			ClientName:  client.Name,
			Phone:       client.Phone,
			Detail:      detail,
			TotalQuoted: quotation.Total,
			AmountPaid:  0,
			Status:      string(entities.BalanceStatusPendiente),
			CreatedAt:   time.Now().UTC(),
		}
		if _, err := u.quotes.Append(ctx, record); err != nil {
			log.Printf("[quote][usecase] quotation record append failed client=%s err=%v", client.Name, err)
		}
	}

	balance, err := u.ledger.Upsert(ctx, client.Name, client.Phone, detail, quotation.Total, 0)
	if err != nil {
		return QuoteResult{}, err
	}

	if u.notifier != nil && client.Phone != "" {
		msg := formatQuoteMessage(client.Name, quotation, balance)
		if err := u.notifier.Send(ctx, client.Phone, msg); err != nil {
			log.Printf("[quote][usecase] notification failed client=%s err=%v", client.Name, err)
		}
	}

	return QuoteResult{Quotation: quotation, Balance: balance}, nil
}

// ResolveLineItems prices each requested item against the table and
// aggregates the tax-inclusive quotation.
//
// Unmatched items are listed with found=false and contribute 0 to the
// subtotal. Subtotal, tax and total stay unrounded here.
func ResolveLineItems(items []entities.LineItemRequest, table entities.PriceTable) entities.Quotation {
	labels := ordinalLabels(items)

	q := entities.Quotation{LineItems: make([]entities.ResolvedLineItem, 0, len(items))}
	for i, item := range items {
		resolved := entities.ResolvedLineItem{
			Label: labels[i],
			Area:  item.Area,
		}
		if tier, ok := table.Match(item.Environment, item.Area); ok {
			resolved.Found = true
			resolved.UnitPrice = tier.Price.Value
			resolved.PriceCoerced = tier.Price.Coerced
			q.Subtotal += tier.Price.Value
		}
		q.LineItems = append(q.LineItems, resolved)
	}
	q.Tax = q.Subtotal * entities.TaxRate
	q.Total = q.Subtotal + q.Tax
	return q
}

// ordinalLabels upper-cases each requested environment and suffixes a
// 1-based sequence number, in request order, only for names that repeat
// within the request.
func ordinalLabels(items []entities.LineItemRequest) []string {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[entities.NormalizeEnvironment(item.Environment)]++
	}

	labels := make([]string, len(items))
	seen := make(map[string]int, len(items))
	for i, item := range items {
		key := entities.NormalizeEnvironment(item.Environment)
		label := strings.ToUpper(strings.TrimSpace(item.Environment))
		if counts[key] > 1 {
			seen[key]++
			label = fmt.Sprintf("%s %d", label, seen[key])
		}
		labels[i] = label
	}
	return labels
}

// describeLineItems builds the detail cell stored with the ledger row and
// the quotation record: the labels in request order, plus the client's
// district when they gave one.
func describeLineItems(items []entities.ResolvedLineItem, district string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Label)
	}
	detail := strings.Join(parts, ", ")
	if d := strings.TrimSpace(district); d != "" {
		detail = fmt.Sprintf("%s (%s)", detail, d)
	}
	return detail
}

func formatQuoteMessage(name string, q entities.Quotation, b entities.ClientBalance) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hola %s, esta es tu cotización:\n", name)
	for _, it := range q.LineItems {
		if it.Found {
			fmt.Fprintf(&sb, "- %s (%.2f m2): S/ %.2f\n", it.Label, it.Area, it.UnitPrice)
		} else {
			fmt.Fprintf(&sb, "- %s (%.2f m2): sin tarifa disponible\n", it.Label, it.Area)
		}
	}
	fmt.Fprintf(&sb, "Subtotal: S/ %.2f\nIGV (18%%): S/ %.2f\nTotal: S/ %.2f\n", q.Subtotal, q.Tax, q.Total)
	fmt.Fprintf(&sb, "Saldo pendiente: S/ %.2f (%s)", b.BalanceDue, b.Status)
	return sb.String()
}
