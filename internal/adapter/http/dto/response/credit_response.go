package response

import (
	"time"

	"recursos_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Money is rendered as a fixed two-decimal string.

type CreditAccountResponse struct {
	OwnerType      string    `json:"owner_type"`
	OwnerID        string    `json:"owner_id"`
	Balance        string    `json:"balance"`
	TotalPurchased string    `json:"total_purchased"`
	TotalUsed      string    `json:"total_used"`
	Version        int64     `json:"version"`
	LowBalance     bool      `json:"low_balance"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FromCreditAccount flags the account as low when its balance is below
// threshold. A zero threshold disables the flag.
func FromCreditAccount(a entities.CreditAccount, threshold decimal.Decimal) CreditAccountResponse {
	return CreditAccountResponse{
		OwnerType:      string(a.OwnerType),
		OwnerID:        a.OwnerID,
		Balance:        a.Balance.StringFixed(entities.AmountScale),
		TotalPurchased: a.TotalPurchased.StringFixed(entities.AmountScale),
		TotalUsed:      a.TotalUsed.StringFixed(entities.AmountScale),
		Version:        a.Version,
		LowBalance:     threshold.IsPositive() && a.Balance.LessThanOrEqual(threshold),
		UpdatedAt:      a.UpdatedAt,
	}
}

type CreditTransactionResponse struct {
	ID           string    `json:"id"`
	Sequence     int64     `json:"sequence"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	BalanceAfter string    `json:"balance_after"`
	Notes        string    `json:"notes,omitempty"`
	Reference    string    `json:"reference,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromCreditTransaction(tx entities.CreditTransaction) CreditTransactionResponse {
	return CreditTransactionResponse{
		ID:           tx.ID,
		Sequence:     tx.Sequence,
		Type:         string(tx.Type),
		Amount:       tx.Amount.StringFixed(entities.AmountScale),
		BalanceAfter: tx.BalanceAfter.StringFixed(entities.AmountScale),
		Notes:        tx.Notes,
		Reference:    tx.Reference,
		CreatedAt:    tx.CreatedAt,
	}
}

type StatementResponse struct {
	Items      []CreditTransactionResponse `json:"items"`
	NextCursor int64                       `json:"next_cursor,omitempty"`
}

func FromStatementPage(p entities.StatementPage) StatementResponse {
	items := make([]CreditTransactionResponse, 0, len(p.Items))
	for _, tx := range p.Items {
		items = append(items, FromCreditTransaction(tx))
	}
	return StatementResponse{Items: items, NextCursor: p.NextCursor}
}

type ConsumeCreditsResponse struct {
	Account     CreditAccountResponse     `json:"account"`
	Transaction CreditTransactionResponse `json:"transaction"`
}

type ChargeResponse struct {
	PaymentRef        string     `json:"payment_ref"`
	Status            string     `json:"status"`
	Amount            string     `json:"amount"`
	ExternalReference string     `json:"external_reference"`
	InvoiceURL        string     `json:"invoice_url,omitempty"`
	QRPayload         string     `json:"qr_payload,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		PaymentRef:        c.PaymentRef,
		Status:            string(c.Status),
		Amount:            c.Amount.StringFixed(entities.AmountScale),
		ExternalReference: c.ExternalReference,
		InvoiceURL:        c.InvoiceURL,
		QRPayload:         c.QRPayload,
		ExpiresAt:         c.ExpiresAt,
	}
}
