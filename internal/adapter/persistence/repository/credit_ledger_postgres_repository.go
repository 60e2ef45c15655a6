package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CreditLedgerSchema creates the SQL ledger tables. Amounts travel as text and
// are cast to NUMERIC in the statements, so no decimal codec is registered.
const CreditLedgerSchema = `
CREATE TABLE IF NOT EXISTS credit_accounts (
    owner_type      TEXT           NOT NULL,
    owner_id        TEXT           NOT NULL,
    balance         NUMERIC(14, 2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
    total_purchased NUMERIC(14, 2) NOT NULL DEFAULT 0,
    total_used      NUMERIC(14, 2) NOT NULL DEFAULT 0,
    version         BIGINT         NOT NULL DEFAULT 0,
    updated_at      TIMESTAMPTZ,
    PRIMARY KEY (owner_type, owner_id),
    CHECK (balance = total_purchased - total_used)
);

CREATE TABLE IF NOT EXISTS credit_transactions (
    id            UUID           PRIMARY KEY,
    owner_type    TEXT           NOT NULL,
    owner_id      TEXT           NOT NULL,
    sequence      BIGINT         NOT NULL,
    type          TEXT           NOT NULL CHECK (type IN ('credit', 'debit')),
    amount        NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
    balance_after NUMERIC(14, 2) NOT NULL,
    notes         TEXT           NOT NULL DEFAULT '',
    reference     TEXT,
    created_at    TIMESTAMPTZ    NOT NULL,
    CONSTRAINT credit_transactions_reference_key UNIQUE (reference),
    CONSTRAINT credit_transactions_owner_sequence_key UNIQUE (owner_type, owner_id, sequence)
);
`

const pgUniqueViolation = "23505"

// CreditLedgerPostgresRepository keeps the ledger in Postgres. Append locks the
// owner's account row with SELECT ... FOR UPDATE, so the balance check and the
// write happen under the same lock.
type CreditLedgerPostgresRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
	now    func() time.Time
}

var _ interfaces.ICreditLedgerRepository = (*CreditLedgerPostgresRepository)(nil)

func NewCreditLedgerPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) *CreditLedgerPostgresRepository {
	return &CreditLedgerPostgresRepository{
		db:     db,
		logger: observability.OrNop(logger).Named("ledger.postgres"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// EnsureSchema applies CreditLedgerSchema. It is idempotent.
func (r *CreditLedgerPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, CreditLedgerSchema); err != nil {
		return fmt.Errorf("ledger schema: %w", err)
	}
	return nil
}

func (r *CreditLedgerPostgresRepository) Append(ctx context.Context, txn entities.CreditTransaction) (entities.CreditAccount, entities.CreditTransaction, error) {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = r.now()
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entities.CreditAccount{}, entities.CreditTransaction{}, fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if txn.Reference != "" {
		var exists bool
		err = tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM credit_transactions WHERE reference = $1)", txn.Reference).Scan(&exists)
		if err != nil {
			return entities.CreditAccount{}, entities.CreditTransaction{}, fmt.Errorf("reference lookup failed: %w", err)
		}
		if exists {
			return entities.CreditAccount{}, entities.CreditTransaction{}, &apperr.DuplicatePaymentError{Reference: txn.Reference}
		}
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO credit_accounts (owner_type, owner_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		string(txn.OwnerType), txn.OwnerID)
	if err != nil {
		return entities.CreditAccount{}, entities.CreditTransaction{}, fmt.Errorf("account upsert failed: %w", err)
	}

	acct, err := scanAccount(tx.QueryRow(ctx, `
		SELECT balance::text, total_purchased::text, total_used::text, version, updated_at
		FROM credit_accounts WHERE owner_type = $1 AND owner_id = $2 FOR UPDATE`,
		string(txn.OwnerType), txn.OwnerID), txn.OwnerType, txn.OwnerID)
	if err != nil {
		return entities.CreditAccount{}, entities.CreditTransaction{}, fmt.Errorf("lock acquisition failed: %w", err)
	}

	next, err := acct.Apply(&txn)
	if err != nil {
		return acct, entities.CreditTransaction{}, err
	}

	var reference *string
	if txn.Reference != "" {
		reference = &txn.Reference
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO credit_transactions
			(id, owner_type, owner_id, sequence, type, amount, balance_after, notes, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8, $9, $10)`,
		txn.ID, string(txn.OwnerType), txn.OwnerID, txn.Sequence, string(txn.Type),
		formatMoney(txn.Amount), formatMoney(txn.BalanceAfter), txn.Notes, reference, txn.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == "credit_transactions_reference_key" {
			return entities.CreditAccount{}, entities.CreditTransaction{}, &apperr.DuplicatePaymentError{Reference: txn.Reference}
		}
		return entities.CreditAccount{}, entities.CreditTransaction{}, fmt.Errorf("transaction insert failed: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE credit_accounts
		SET balance = $3::numeric, total_purchased = $4::numeric, total_used = $5::numeric, version = $6, updated_at = $7
		WHERE owner_type = $1 AND owner_id = $2`,
		string(txn.OwnerType), txn.OwnerID,
		formatMoney(next.Balance), formatMoney(next.TotalPurchased), formatMoney(next.TotalUsed), next.Version, next.UpdatedAt)
	if err != nil {
		return entities.CreditAccount{}, entities.CreditTransaction{}, fmt.Errorf("account update failed: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return entities.CreditAccount{}, entities.CreditTransaction{}, fmt.Errorf("tx commit failed: %w", err)
	}

	r.logger.Debug("ledger row appended",
		zap.String("owner_key", entities.OwnerKey(txn.OwnerType, txn.OwnerID)),
		zap.Int64("sequence", txn.Sequence))
	return next, txn, nil
}

func (r *CreditLedgerPostgresRepository) GetAccount(ctx context.Context, ownerType entities.OwnerType, ownerID string) (entities.CreditAccount, error) {
	acct, err := scanAccount(r.db.QueryRow(ctx, `
		SELECT balance::text, total_purchased::text, total_used::text, version, updated_at
		FROM credit_accounts WHERE owner_type = $1 AND owner_id = $2`,
		string(ownerType), ownerID), ownerType, ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.NewCreditAccount(ownerType, ownerID), nil
	}
	if err != nil {
		return entities.CreditAccount{}, err
	}
	return acct, nil
}

func (r *CreditLedgerPostgresRepository) ListTransactions(ctx context.Context, ownerType entities.OwnerType, ownerID string, filter entities.StatementFilter) (entities.StatementPage, error) {
	filter = filter.Normalize()

	conds := []string{"owner_type = $1", "owner_id = $2", "sequence > $3"}
	args := []any{string(ownerType), ownerID, filter.AfterSequence}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conds = append(conds, "type = $"+strconv.Itoa(len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conds = append(conds, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conds = append(conds, "created_at <= $"+strconv.Itoa(len(args)))
	}
	args = append(args, filter.Limit+1)

	rows, err := r.db.Query(ctx, `
		SELECT id::text, sequence, type, amount::text, balance_after::text, notes, COALESCE(reference, ''), created_at
		FROM credit_transactions
		WHERE `+strings.Join(conds, " AND ")+`
		ORDER BY sequence ASC
		LIMIT $`+strconv.Itoa(len(args)), args...)
	if err != nil {
		return entities.StatementPage{}, err
	}
	defer rows.Close()

	page := entities.StatementPage{Items: []entities.CreditTransaction{}}
	for rows.Next() {
		var (
			tx                 entities.CreditTransaction
			typ, amount, after string
		)
		if err := rows.Scan(&tx.ID, &tx.Sequence, &typ, &amount, &after, &tx.Notes, &tx.Reference, &tx.CreatedAt); err != nil {
			return entities.StatementPage{}, err
		}
		tx.OwnerType = ownerType
		tx.OwnerID = ownerID
		tx.Type = entities.TransactionType(typ)
		tx.Amount = parseMoney(amount)
		tx.BalanceAfter = parseMoney(after)
		tx.CreatedAt = tx.CreatedAt.UTC()

		if len(page.Items) == filter.Limit {
			page.NextCursor = page.Items[len(page.Items)-1].Sequence
			break
		}
		page.Items = append(page.Items, tx)
	}
	if err := rows.Err(); err != nil {
		return entities.StatementPage{}, err
	}
	return page, nil
}

func scanAccount(row pgx.Row, ownerType entities.OwnerType, ownerID string) (entities.CreditAccount, error) {
	var (
		balance, purchased, used string
		updatedAt                *time.Time
	)
	acct := entities.NewCreditAccount(ownerType, ownerID)
	if err := row.Scan(&balance, &purchased, &used, &acct.Version, &updatedAt); err != nil {
		return entities.CreditAccount{}, err
	}
	acct.Balance = parseMoney(balance)
	acct.TotalPurchased = parseMoney(purchased)
	acct.TotalUsed = parseMoney(used)
	if updatedAt != nil {
		acct.UpdatedAt = updatedAt.UTC()
	}
	return acct, nil
}
