package request

import (
	"errors"
	"strings"
	"time"

	"recursos_api/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOwnerType       = errors.New("owner_type must be company or client")
	ErrInvalidTransactionType = errors.New("type must be credit or debit")
	ErrInvalidTimeBound       = errors.New("from/to must be RFC3339 timestamps")
)

// Amounts accept both JSON numbers and strings ("49.90").

type PurchaseCreditsRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	PaymentRef string          `json:"payment_ref" binding:"required"`
}

type ConsumeCreditsRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

type RefundCreditsRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason" binding:"required"`
	Reference string          `json:"reference"`
}

type TopUpCreditsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// StatementQuery is bound from the query string of GET .../transactions.
type StatementQuery struct {
	Type  string `form:"type"`
	From  string `form:"from"`
	To    string `form:"to"`
	After int64  `form:"after"`
	Limit int    `form:"limit"`
}

func (q StatementQuery) ToFilter() (entities.StatementFilter, error) {
	f := entities.StatementFilter{AfterSequence: q.After, Limit: q.Limit}

	if t := strings.ToLower(strings.TrimSpace(q.Type)); t != "" {
		txType := entities.TransactionType(t)
		if !txType.Valid() {
			return entities.StatementFilter{}, ErrInvalidTransactionType
		}
		f.Type = txType
	}

	var err error
	if f.From, err = parseTimeBound(q.From); err != nil {
		return entities.StatementFilter{}, err
	}
	if f.To, err = parseTimeBound(q.To); err != nil {
		return entities.StatementFilter{}, err
	}
	return f, nil
}

func parseTimeBound(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidTimeBound
	}
	return t.UTC(), nil
}

// ParseOwnerType reads the :owner_type path segment.
func ParseOwnerType(s string) (entities.OwnerType, error) {
	o := entities.OwnerType(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", ErrInvalidOwnerType
	}
	return o, nil
}
