package memory

import (
	"context"
	"sort"
	"sync"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/usecase/interfaces"
)

type ServiceOrderDraftMemoryRepository struct {
	mu     sync.Mutex
	drafts map[string]entities.ServiceOrderDraft
}

var _ interfaces.IServiceOrderDraftRepository = (*ServiceOrderDraftMemoryRepository)(nil)

func NewServiceOrderDraftMemoryRepository() *ServiceOrderDraftMemoryRepository {
	return &ServiceOrderDraftMemoryRepository{drafts: make(map[string]entities.ServiceOrderDraft)}
}

func (r *ServiceOrderDraftMemoryRepository) Create(ctx context.Context, d entities.ServiceOrderDraft) (entities.ServiceOrderDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[d.ID]; exists {
		return entities.ServiceOrderDraft{}, &apperr.ConflictError{Resource: "draft", ID: d.ID}
	}
	r.drafts[d.ID] = cloneDraft(d)
	return cloneDraft(d), nil
}

func (r *ServiceOrderDraftMemoryRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrderDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[id]
	if !ok {
		return entities.ServiceOrderDraft{}, nil
	}
	return cloneDraft(d), nil
}

func (r *ServiceOrderDraftMemoryRepository) GetByPaymentRef(ctx context.Context, paymentRef string) (entities.ServiceOrderDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.drafts {
		if paymentRef != "" && d.PaymentRef == paymentRef {
			return cloneDraft(d), nil
		}
	}
	return entities.ServiceOrderDraft{}, nil
}

func (r *ServiceOrderDraftMemoryRepository) List(ctx context.Context, filter entities.DraftFilter) ([]entities.ServiceOrderDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.ServiceOrderDraft, 0, len(r.drafts))
	for _, d := range r.drafts {
		if filter.Matches(d) {
			out = append(out, cloneDraft(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceOrderDraftMemoryRepository) MergeData(ctx context.Context, id string, upd interfaces.DraftDataUpdate) (entities.ServiceOrderDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[id]
	if !ok {
		return entities.ServiceOrderDraft{}, &apperr.NotFoundError{Resource: "draft", ID: id}
	}
	if upd.RequiredStatus != "" && d.Status != upd.RequiredStatus {
		return entities.ServiceOrderDraft{}, &apperr.InvalidStateError{DraftID: id, Status: string(d.Status), Operation: "save"}
	}
	if upd.ExpectedVersion != 0 && d.Version != upd.ExpectedVersion {
		return entities.ServiceOrderDraft{}, &apperr.ConflictError{Resource: "draft", ID: id, ExpectedVersion: upd.ExpectedVersion}
	}

	d.WizardData = d.WizardData.Merge(upd.Key, upd.Fields)
	if upd.Step > d.CurrentStep {
		d.CurrentStep = upd.Step
	}
	if upd.ClientID != "" {
		d.ClientID = upd.ClientID
	}
	d.LastSavedAt = upd.SavedAt
	d.Version++
	r.drafts[id] = d
	return cloneDraft(d), nil
}

func (r *ServiceOrderDraftMemoryRepository) Transition(ctx context.Context, id string, from, to entities.DraftStatus, expectedVersion int64, patch entities.DraftPatch) (entities.ServiceOrderDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[id]
	if !ok {
		return entities.ServiceOrderDraft{}, &apperr.NotFoundError{Resource: "draft", ID: id}
	}
	if d.Status != from || d.Version != expectedVersion {
		return entities.ServiceOrderDraft{}, apperr.ErrVersionConflict
	}

	d = patch.Apply(d)
	d.Status = to
	d.Version++
	r.drafts[id] = d
	return cloneDraft(d), nil
}

func (r *ServiceOrderDraftMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[id]
	if !ok {
		return &apperr.NotFoundError{Resource: "draft", ID: id}
	}
	if !d.Status.Deletable() {
		return &apperr.InvalidStateError{DraftID: id, Status: string(d.Status), Operation: "delete"}
	}
	delete(r.drafts, id)
	return nil
}

// cloneDraft deep-copies the payloads so callers never alias stored state.
func cloneDraft(d entities.ServiceOrderDraft) entities.ServiceOrderDraft {
	d.WizardData = d.WizardData.Clone()
	d.Result = entities.CloneFields(d.Result)
	if d.ExpiresAt != nil {
		exp := *d.ExpiresAt
		d.ExpiresAt = &exp
	}
	return d
}
