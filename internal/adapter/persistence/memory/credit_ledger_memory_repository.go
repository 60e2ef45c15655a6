// Package memory holds in-process implementations of the repositories, used for
// local runs (STORAGE_BACKEND=memory) and as real stores in use case tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CreditLedgerMemoryRepository keeps the ledger in memory. A single mutex makes
// every Append (balance check included) atomic.
type CreditLedgerMemoryRepository struct {
	mu         sync.Mutex
	accounts   map[string]entities.CreditAccount
	txs        map[string][]entities.CreditTransaction
	references map[string]string
	now        func() time.Time
}

var _ interfaces.ICreditLedgerRepository = (*CreditLedgerMemoryRepository)(nil)

func NewCreditLedgerMemoryRepository() *CreditLedgerMemoryRepository {
	return &CreditLedgerMemoryRepository{
		accounts:   make(map[string]entities.CreditAccount),
		txs:        make(map[string][]entities.CreditTransaction),
		references: make(map[string]string),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *CreditLedgerMemoryRepository) Append(ctx context.Context, tx entities.CreditTransaction) (entities.CreditAccount, entities.CreditTransaction, error) {
	if err := ctx.Err(); err != nil {
		return entities.CreditAccount{}, entities.CreditTransaction{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tx.Reference != "" {
		if _, seen := r.references[tx.Reference]; seen {
			return entities.CreditAccount{}, entities.CreditTransaction{}, &apperr.DuplicatePaymentError{Reference: tx.Reference}
		}
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = r.now()
	}

	key := entities.OwnerKey(tx.OwnerType, tx.OwnerID)
	acct, ok := r.accounts[key]
	if !ok {
		acct = entities.NewCreditAccount(tx.OwnerType, tx.OwnerID)
	}

	next, err := acct.Apply(&tx)
	if err != nil {
		return acct, entities.CreditTransaction{}, err
	}

	r.accounts[key] = next
	r.txs[key] = append(r.txs[key], tx)
	if tx.Reference != "" {
		r.references[tx.Reference] = tx.ID
	}
	return next, tx, nil
}

func (r *CreditLedgerMemoryRepository) GetAccount(ctx context.Context, ownerType entities.OwnerType, ownerID string) (entities.CreditAccount, error) {
	if err := ctx.Err(); err != nil {
		return entities.CreditAccount{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if acct, ok := r.accounts[entities.OwnerKey(ownerType, ownerID)]; ok {
		return acct, nil
	}
	return entities.NewCreditAccount(ownerType, ownerID), nil
}

func (r *CreditLedgerMemoryRepository) ListTransactions(ctx context.Context, ownerType entities.OwnerType, ownerID string, filter entities.StatementFilter) (entities.StatementPage, error) {
	if err := ctx.Err(); err != nil {
		return entities.StatementPage{}, err
	}
	filter = filter.Normalize()

	r.mu.Lock()
	all := append([]entities.CreditTransaction(nil), r.txs[entities.OwnerKey(ownerType, ownerID)]...)
	r.mu.Unlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Sequence < all[j].Sequence })

	page := entities.StatementPage{Items: []entities.CreditTransaction{}}
	for _, tx := range all {
		if tx.Sequence <= filter.AfterSequence || !filter.Matches(tx) {
			continue
		}
		if len(page.Items) == filter.Limit {
			page.NextCursor = page.Items[len(page.Items)-1].Sequence
			break
		}
		page.Items = append(page.Items, tx)
	}
	return page, nil
}
