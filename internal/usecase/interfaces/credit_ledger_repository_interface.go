package interfaces

import (
	"context"
	"recursos_api/internal/domain/entities"
)

//go:generate mockgen -source=credit_ledger_repository_interface.go -destination=mocks/credit_ledger_repository_mock.go -package=mock_interfaces

// ICreditLedgerRepository is the Ledger Store.
//
// Append is the only mutator: it writes the transaction and the recomputed
// account in one atomic unit, checking the debit against the current balance
// inside that unit. A transaction whose Reference was already appended fails
// with *apperr.DuplicatePaymentError; an overdrawn debit with
// *apperr.InsufficientBalanceError.
//
// GetAccount never fails for an unknown owner: it returns the zero account.
type ICreditLedgerRepository interface {
	Append(ctx context.Context, tx entities.CreditTransaction) (entities.CreditAccount, entities.CreditTransaction, error)
	GetAccount(ctx context.Context, ownerType entities.OwnerType, ownerID string) (entities.CreditAccount, error)
	ListTransactions(ctx context.Context, ownerType entities.OwnerType, ownerID string, filter entities.StatementFilter) (entities.StatementPage, error)
}
