package interfaces

import (
	"context"
	"time"

	"recursos_api/internal/domain/entities"
)

//go:generate mockgen -source=service_order_draft_repository_interface.go -destination=mocks/service_order_draft_repository_mock.go -package=mock_interfaces

// DraftDataUpdate merges Fields into WizardData[Key].
//
//   - RequiredStatus: the write only applies while the draft is in this status
//     (*apperr.InvalidStateError otherwise).
//   - ExpectedVersion: 0 means last-writer-wins for the merge; any other value
//     must match the stored version (*apperr.ConflictError otherwise).
//   - Step > 0 raises CurrentStep to max(CurrentStep, Step).
//   - ClientID, when set, is copied to the draft.
type DraftDataUpdate struct {
	Key             string
	Fields          map[string]any
	Step            int
	ClientID        string
	RequiredStatus  entities.DraftStatus
	ExpectedVersion int64
	SavedAt         time.Time
}

// IServiceOrderDraftRepository abstracts persistence for ServiceOrderDraft.
//
// GetByID/GetByPaymentRef return a zero draft (empty ID) when nothing matches.
// Transition is a compare-and-set on (status, version): it returns
// apperr.ErrVersionConflict when the stored row no longer matches from/version.
type IServiceOrderDraftRepository interface {
	Create(ctx context.Context, d entities.ServiceOrderDraft) (entities.ServiceOrderDraft, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrderDraft, error)
	GetByPaymentRef(ctx context.Context, paymentRef string) (entities.ServiceOrderDraft, error)
	List(ctx context.Context, filter entities.DraftFilter) ([]entities.ServiceOrderDraft, error)
	MergeData(ctx context.Context, id string, upd DraftDataUpdate) (entities.ServiceOrderDraft, error)
	Transition(ctx context.Context, id string, from, to entities.DraftStatus, expectedVersion int64, patch entities.DraftPatch) (entities.ServiceOrderDraft, error)
	Delete(ctx context.Context, id string) error
}
