package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// defaultConsumeReason is recorded when a consumption carries no reason.
const defaultConsumeReason = "credit consumption"

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrCreditLedgerNotConfigured   = errors.New("credit ledger not configured")
)

// ICreditLedgerUseCase is the Credit Ledger Service.
//
//   - Purchase: credit funded by an external payment; externalPaymentRef is the
//     idempotency key (gateway confirmations are delivered more than once).
//   - Consume: all-or-nothing debit; never overdraws.
//   - Refund: explicit compensating credit, never implicit.
//   - RequestTopUp: opens a gateway charge whose confirmation becomes a Purchase.
type ICreditLedgerUseCase interface {
	Purchase(ctx context.Context, ownerType entities.OwnerType, ownerID string, amount decimal.Decimal, externalPaymentRef string) (entities.CreditAccount, error)
	Consume(ctx context.Context, ownerType entities.OwnerType, ownerID string, amount decimal.Decimal, reason string) (entities.CreditAccount, entities.CreditTransaction, error)
	Refund(ctx context.Context, ownerType entities.OwnerType, ownerID string, amount decimal.Decimal, reason, reference string) (entities.CreditAccount, error)
	RequestTopUp(ctx context.Context, ownerType entities.OwnerType, ownerID string, amount decimal.Decimal) (entities.Charge, error)
	GetBalance(ctx context.Context, ownerType entities.OwnerType, ownerID string) (entities.CreditAccount, error)
	GetStatement(ctx context.Context, ownerType entities.OwnerType, ownerID string, filter entities.StatementFilter) (entities.StatementPage, error)
}

type CreditLedgerUseCase struct {
	repo    interfaces.ICreditLedgerRepository
	gateway interfaces.IPaymentGateway
	logger  *zap.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

var _ ICreditLedgerUseCase = (*CreditLedgerUseCase)(nil)

func NewCreditLedgerUseCase(repo interfaces.ICreditLedgerRepository, gateway interfaces.IPaymentGateway, logger *zap.Logger, metrics *observability.Metrics) *CreditLedgerUseCase {
	return &CreditLedgerUseCase{
		repo:    repo,
		gateway: gateway,
		logger:  observability.OrNop(logger).Named("ledger.usecase"),
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *CreditLedgerUseCase) Purchase(ctx context.Context, ownerType entities.OwnerType, ownerID string, amount decimal.Decimal, externalPaymentRef string) (entities.CreditAccount, error) {
	if err := entities.ValidateAmount(amount); err != nil {
		return entities.CreditAccount{}, err
	}
	externalPaymentRef = strings.TrimSpace(externalPaymentRef)
	if externalPaymentRef == "" {
		return entities.CreditAccount{}, &apperr.ValidationError{Field: "payment_ref", Message: "required"}
	}

	acct, _, err := u.append(ctx, "purchase", entities.CreditTransaction{
		OwnerType: ownerType,
		OwnerID:   ownerID,
		Type:      entities.TransactionTypeCredit,
		Amount:    amount,
		Notes:     "credit purchase",
		Reference: externalPaymentRef,
	})
	return acct, err
}

func (u *CreditLedgerUseCase) Consume(ctx context.Context, ownerType entities.OwnerType, ownerID string, amount decimal.Decimal, reason string) (entities.CreditAccount, entities.CreditTransaction, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultConsumeReason
	}

	return u.append(ctx, "consume", entities.CreditTransaction{
		OwnerType: ownerType,
		OwnerID:   ownerID,
		Type:      entities.TransactionTypeDebit,
		Amount:    amount,
		Notes:     reason,
	})
}

func (u *CreditLedgerUseCase) Refund(ctx context.Context, ownerType entities.OwnerType, ownerID string, amount decimal.Decimal, reason, reference string) (entities.CreditAccount, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.CreditAccount{}, &apperr.ValidationError{Field: "reason", Message: "required"}
	}

	ref := strings.TrimSpace(reference)
	if ref != "" {
		ref = "refund:" + ref
	}
	acct, _, err := u.append(ctx, "refund", entities.CreditTransaction{
		OwnerType: ownerType,
		OwnerID:   ownerID,
		Type:      entities.TransactionTypeCredit,
		Amount:    amount,
		Notes:     "refund: " + reason,
		Reference: ref,
	})
	return acct, err
}

func (u *CreditLedgerUseCase) RequestTopUp(ctx context.Context, ownerType entities.OwnerType, ownerID string, amount decimal.Decimal) (entities.Charge, error) {
	if err := validateOwner(ownerType, ownerID); err != nil {
		return entities.Charge{}, err
	}
	if err := entities.ValidateAmount(amount); err != nil {
		return entities.Charge{}, err
	}
	if u.gateway == nil {
		u.logger.Warn("top-up requested without gateway", zap.String("owner_id", ownerID))
		return entities.Charge{}, ErrPaymentGatewayNotConfigured
	}

	charge, err := u.gateway.CreateCharge(ctx, entities.ChargeRequest{
		Amount:            amount,
		ExternalReference: entities.CreditTopUpReference(ownerType, ownerID),
		Description:       "Compra de créditos",
	})
	if err != nil {
		u.metrics.IncExternalError("payment_gateway")
		u.logger.Error("top-up charge failed",
			zap.String("owner_type", string(ownerType)),
			zap.String("owner_id", ownerID),
			zap.String("amount", amount.StringFixed(2)),
			zap.Error(err))
		return entities.Charge{}, err
	}

	u.logger.Info("top-up charge created",
		zap.String("owner_type", string(ownerType)),
		zap.String("owner_id", ownerID),
		zap.String("payment_ref", charge.PaymentRef))
	return charge, nil
}

func (u *CreditLedgerUseCase) GetBalance(ctx context.Context, ownerType entities.OwnerType, ownerID string) (entities.CreditAccount, error) {
	if err := validateOwner(ownerType, ownerID); err != nil {
		return entities.CreditAccount{}, err
	}
	return u.repo.GetAccount(ctx, ownerType, strings.TrimSpace(ownerID))
}

func (u *CreditLedgerUseCase) GetStatement(ctx context.Context, ownerType entities.OwnerType, ownerID string, filter entities.StatementFilter) (entities.StatementPage, error) {
	if err := validateOwner(ownerType, ownerID); err != nil {
		return entities.StatementPage{}, err
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return entities.StatementPage{}, &apperr.ValidationError{Field: "type", Message: "must be credit or debit"}
	}
	return u.repo.ListTransactions(ctx, ownerType, strings.TrimSpace(ownerID), filter.Normalize())
}

func (u *CreditLedgerUseCase) append(ctx context.Context, op string, tx entities.CreditTransaction) (entities.CreditAccount, entities.CreditTransaction, error) {
	start := time.Now()
	defer func() { u.metrics.ObserveDuration("ledger_"+op, time.Since(start)) }()

	tx.OwnerID = strings.TrimSpace(tx.OwnerID)
	if err := validateOwner(tx.OwnerType, tx.OwnerID); err != nil {
		u.metrics.IncLedgerOp(op, "invalid")
		return entities.CreditAccount{}, entities.CreditTransaction{}, err
	}
	if err := entities.ValidateAmount(tx.Amount); err != nil {
		u.metrics.IncLedgerOp(op, "invalid")
		u.logger.Info("rejected amount",
			zap.String("operation", op),
			zap.String("owner_id", tx.OwnerID),
			zap.String("amount", tx.Amount.String()))
		return entities.CreditAccount{}, entities.CreditTransaction{}, err
	}

	tx.ID = uuid.NewString()
	tx.CreatedAt = u.now()

	acct, stored, err := u.repo.Append(ctx, tx)
	if err != nil {
		u.metrics.IncLedgerOp(op, outcomeOf(err))
		u.logger.Warn("ledger append failed",
			zap.String("operation", op),
			zap.String("owner_type", string(tx.OwnerType)),
			zap.String("owner_id", tx.OwnerID),
			zap.String("amount", tx.Amount.StringFixed(2)),
			zap.String("reference", tx.Reference),
			zap.Error(err))
		return entities.CreditAccount{}, entities.CreditTransaction{}, err
	}

	amount, _ := stored.Amount.Float64()
	u.metrics.IncLedgerOp(op, "ok")
	u.metrics.AddLedgerAmount(string(stored.Type), amount)
	u.logger.Info("ledger append",
		zap.String("operation", op),
		zap.String("owner_type", string(acct.OwnerType)),
		zap.String("owner_id", acct.OwnerID),
		zap.String("transaction_id", stored.ID),
		zap.Int64("sequence", stored.Sequence),
		zap.String("amount", stored.Amount.StringFixed(2)),
		zap.String("balance", acct.Balance.StringFixed(2)))
	return acct, stored, nil
}

func validateOwner(ownerType entities.OwnerType, ownerID string) error {
	if !ownerType.Valid() {
		return &apperr.ValidationError{Field: "owner_type", Message: "must be company or client"}
	}
	if strings.TrimSpace(ownerID) == "" {
		return &apperr.ValidationError{Field: "owner_id", Message: "required"}
	}
	return nil
}

func outcomeOf(err error) string {
	var (
		insufficient *apperr.InsufficientBalanceError
		duplicate    *apperr.DuplicatePaymentError
	)
	switch {
	case errors.As(err, &insufficient):
		return "insufficient_balance"
	case errors.As(err, &duplicate):
		return "duplicate"
	default:
		return string(apperr.ClassOf(err))
	}
}
