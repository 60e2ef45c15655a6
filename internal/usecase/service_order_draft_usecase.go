package usecase

import (
	"context"
	"fmt"
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

// IServiceOrderDraftUseCase is the wizard side of a recurso: create, autosave,
// read and delete drafts.
//
// Save only applies while the draft is in rascunho. expectedVersion 0 means
// last-writer-wins for the merge; any other value must match the stored version.
type IServiceOrderDraftUseCase interface {
	Create(ctx context.Context, ownerID string) (entities.ServiceOrderDraft, error)
	Save(ctx context.Context, id string, step int, stepData map[string]any, expectedVersion int64) (entities.ServiceOrderDraft, error)
	Get(ctx context.Context, id string) (entities.ServiceOrderDraft, error)
	List(ctx context.Context, filter entities.DraftFilter) ([]entities.ServiceOrderDraft, error)
	Delete(ctx context.Context, id string) error
}

type ServiceOrderDraftUseCase struct {
	repo   interfaces.IServiceOrderDraftRepository
	price  decimal.Decimal
	logger *zap.Logger
	now    func() time.Time
}

var _ IServiceOrderDraftUseCase = (*ServiceOrderDraftUseCase)(nil)

func NewServiceOrderDraftUseCase(repo interfaces.IServiceOrderDraftRepository, price decimal.Decimal, logger *zap.Logger) *ServiceOrderDraftUseCase {
	return &ServiceOrderDraftUseCase{
		repo:   repo,
		price:  price,
		logger: observability.OrNop(logger).Named("draft.usecase"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceOrderDraftUseCase) Create(ctx context.Context, ownerID string) (entities.ServiceOrderDraft, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "owner_id", Message: "required"}
	}

	now := u.now()
	d := entities.ServiceOrderDraft{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Status:      entities.DraftStatusRascunho,
		CurrentStep: entities.FirstWizardStep,
		WizardData:  entities.WizardData{},
		Price:       u.price,
		Version:     1,
		LastSavedAt: now,
		CreatedAt:   now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		u.logger.Error("create draft failed", zap.String("owner_id", ownerID), zap.Error(err))
		return entities.ServiceOrderDraft{}, err
	}
	u.logger.Info("draft created", zap.String("draft_id", created.ID), zap.String("owner_id", ownerID))
	return created, nil
}

func (u *ServiceOrderDraftUseCase) Save(ctx context.Context, id string, step int, stepData map[string]any, expectedVersion int64) (entities.ServiceOrderDraft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "id", Message: "required"}
	}
	if step < entities.FirstWizardStep || step > entities.LastWizardStep {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{
			Field:   "step",
			Message: fmt.Sprintf("must be between %d and %d", entities.FirstWizardStep, entities.LastWizardStep),
		}
	}
	if expectedVersion < 0 {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "version", Message: "must not be negative"}
	}

	upd := interfaces.DraftDataUpdate{
		Key:             entities.StepKey(step),
		Fields:          stepData,
		Step:            step,
		RequiredStatus:  entities.DraftStatusRascunho,
		ExpectedVersion: expectedVersion,
		SavedAt:         u.now(),
	}
	if step == entities.FirstWizardStep {
		if clientID, ok := stepData["client_id"].(string); ok {
			upd.ClientID = strings.TrimSpace(clientID)
		}
	}

	saved, err := u.repo.MergeData(ctx, id, upd)
	if err != nil {
		u.logger.Warn("save draft failed",
			zap.String("draft_id", id),
			zap.Int("step", step),
			zap.Int64("expected_version", expectedVersion),
			zap.Error(err))
		return entities.ServiceOrderDraft{}, err
	}
	u.logger.Debug("draft saved",
		zap.String("draft_id", id),
		zap.Int("step", step),
		zap.Int("current_step", saved.CurrentStep),
		zap.Int64("version", saved.Version))
	return saved, nil
}

func (u *ServiceOrderDraftUseCase) Get(ctx context.Context, id string) (entities.ServiceOrderDraft, error) {
	return getDraft(ctx, u.repo, id)
}

func (u *ServiceOrderDraftUseCase) List(ctx context.Context, filter entities.DraftFilter) ([]entities.ServiceOrderDraft, error) {
	filter.OwnerID = strings.TrimSpace(filter.OwnerID)
	return u.repo.List(ctx, filter)
}

func (u *ServiceOrderDraftUseCase) Delete(ctx context.Context, id string) error {
	d, err := getDraft(ctx, u.repo, id)
	if err != nil {
		return err
	}
	if !d.Status.Deletable() {
		return &apperr.InvalidStateError{DraftID: d.ID, Status: string(d.Status), Operation: "delete"}
	}
	if err := u.repo.Delete(ctx, d.ID); err != nil {
		u.logger.Warn("delete draft failed", zap.String("draft_id", d.ID), zap.Error(err))
		return err
	}
	u.logger.Info("draft deleted", zap.String("draft_id", d.ID), zap.String("status", string(d.Status)))
	return nil
}

// getDraft turns the store's zero draft into a NotFoundError.
func getDraft(ctx context.Context, repo interfaces.IServiceOrderDraftRepository, id string) (entities.ServiceOrderDraft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "id", Message: "required"}
	}
	d, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if d.ID == "" {
		return entities.ServiceOrderDraft{}, &apperr.NotFoundError{Resource: "draft", ID: id}
	}
	return d, nil
}
