package entities

import (
	"time"

	"recursos_api/internal/domain/apperr"

	"github.com/shopspring/decimal"
)

// OwnerType identifies who a credit account belongs to.
type OwnerType string

const (
	OwnerTypeCompany OwnerType = "company"
	OwnerTypeClient  OwnerType = "client"
)

func (o OwnerType) Valid() bool {
	return o == OwnerTypeCompany || o == OwnerTypeClient
}

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// AmountScale is the number of fractional digits a monetary amount may carry.
const AmountScale = 2

// CreditAccount is the cached projection of an owner's transactions.
//
// Invariants (at every committed state):
//   - Balance == TotalPurchased - TotalUsed
//   - Balance >= 0
//   - Version == number of transactions appended for the owner
//
// The transaction log is the source of truth; the account is derived from it.
type CreditAccount struct {
	OwnerType      OwnerType       `json:"owner_type"`
	OwnerID        string          `json:"owner_id"`
	Balance        decimal.Decimal `json:"balance"`
	TotalPurchased decimal.Decimal `json:"total_purchased"`
	TotalUsed      decimal.Decimal `json:"total_used"`
	Version        int64           `json:"version"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreditTransaction is an immutable ledger row.
//
// Storage model (DynamoDB, credit_transactions):
//   - PK: id
//   - GSI owner_key-index: owner_key ("company#C1") + sequence
//
// Reference is the idempotency key of purchases (gateway payment id) and of
// refunds; it is unique across the whole ledger when set.
type CreditTransaction struct {
	ID           string          `json:"id"`
	OwnerType    OwnerType       `json:"owner_type"`
	OwnerID      string          `json:"owner_id"`
	Sequence     int64           `json:"sequence"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Notes        string          `json:"notes,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OwnerKey is the partition value used to group an owner's rows.
func OwnerKey(ownerType OwnerType, ownerID string) string {
	return string(ownerType) + "#" + ownerID
}

// NewCreditAccount returns the zero-valued account of an owner.
func NewCreditAccount(ownerType OwnerType, ownerID string) CreditAccount {
	return CreditAccount{
		OwnerType:      ownerType,
		OwnerID:        ownerID,
		Balance:        decimal.Zero,
		TotalPurchased: decimal.Zero,
		TotalUsed:      decimal.Zero,
	}
}

// ValidateAmount rejects non-positive amounts and amounts finer than a cent.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &apperr.InvalidAmountError{Amount: amount, Reason: "must be greater than zero"}
	}
	if !amount.Equal(amount.Round(AmountScale)) {
		return &apperr.InvalidAmountError{Amount: amount, Reason: "more than 2 decimal places"}
	}
	return nil
}

// Apply folds tx into the account and returns the next state. tx.Sequence and
// tx.BalanceAfter are filled in. A debit larger than the balance fails with
// InsufficientBalanceError and leaves both values untouched.
func (a CreditAccount) Apply(tx *CreditTransaction) (CreditAccount, error) {
	if err := ValidateAmount(tx.Amount); err != nil {
		return a, err
	}

	next := a
	switch tx.Type {
	case TransactionTypeCredit:
		next.Balance = a.Balance.Add(tx.Amount)
		next.TotalPurchased = a.TotalPurchased.Add(tx.Amount)
	case TransactionTypeDebit:
		if a.Balance.LessThan(tx.Amount) {
			return a, &apperr.InsufficientBalanceError{
				OwnerType: string(a.OwnerType),
				OwnerID:   a.OwnerID,
				Available: a.Balance,
				Requested: tx.Amount,
			}
		}
		next.Balance = a.Balance.Sub(tx.Amount)
		next.TotalUsed = a.TotalUsed.Add(tx.Amount)
	default:
		return a, &apperr.ValidationError{Field: "type", Message: "must be credit or debit"}
	}

	next.Version = a.Version + 1
	next.UpdatedAt = tx.CreatedAt
	tx.Sequence = next.Version
	tx.BalanceAfter = next.Balance
	return next, nil
}

// Reconciles reports whether the cached totals agree with the balance.
func (a CreditAccount) Reconciles() bool {
	return a.Balance.Equal(a.TotalPurchased.Sub(a.TotalUsed)) && !a.Balance.IsNegative()
}

// FoldTransactions rebuilds an account from its ordered history.
func FoldTransactions(ownerType OwnerType, ownerID string, txs []CreditTransaction) (CreditAccount, error) {
	acct := NewCreditAccount(ownerType, ownerID)
	for i := range txs {
		tx := txs[i]
		next, err := acct.Apply(&tx)
		if err != nil {
			return acct, err
		}
		acct = next
	}
	return acct, nil
}

// StatementFilter narrows ListTransactions. AfterSequence is the pagination
// cursor: only rows with a greater sequence are returned.
type StatementFilter struct {
	Type          TransactionType
	From          time.Time
	To            time.Time
	AfterSequence int64
	Limit         int
}

const (
	DefaultStatementLimit = 50
	MaxStatementLimit     = 500
)

// Normalize clamps the page size.
func (f StatementFilter) Normalize() StatementFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultStatementLimit
	}
	if f.Limit > MaxStatementLimit {
		f.Limit = MaxStatementLimit
	}
	if f.AfterSequence < 0 {
		f.AfterSequence = 0
	}
	return f
}

// Matches applies the non-cursor parts of the filter.
func (f StatementFilter) Matches(tx CreditTransaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if !f.From.IsZero() && tx.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && tx.CreatedAt.After(f.To) {
		return false
	}
	return true
}

// StatementPage is one page of an owner's transactions, ascending by sequence.
// NextCursor is zero when there are no more rows.
type StatementPage struct {
	Items      []CreditTransaction `json:"items"`
	NextCursor int64               `json:"next_cursor,omitempty"`
}
