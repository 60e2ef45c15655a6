package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"recursos_api/internal/adapter/persistence/memory"
	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	mock_interfaces "recursos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceOrderDraftUseCase_CreateAndSave(t *testing.T) {
	ctx := context.Background()
	uc := NewServiceOrderDraftUseCase(memory.NewServiceOrderDraftMemoryRepository(), money("49.90"), nil)
	clock := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }

	d, err := uc.Create(ctx, " C1 ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Status != entities.DraftStatusRascunho || d.CurrentStep != 1 || d.OwnerID != "C1" || d.Version != 1 || !d.Price.Equal(money("49.90")) {
		t.Fatalf("unexpected draft: %+v", d)
	}

	clock = clock.Add(time.Minute)
	d, err = uc.Save(ctx, d.ID, 1, map[string]any{"client_id": "K1", "nome": "Ana"}, 1)
	if err != nil {
		t.Fatalf("save step 1: %v", err)
	}
	if d.ClientID != "K1" || d.CurrentStep != 1 || !d.LastSavedAt.Equal(clock) {
		t.Fatalf("unexpected draft after step 1: %+v", d)
	}

	d, err = uc.Save(ctx, d.ID, 3, map[string]any{"defesa": "texto"}, 0)
	if err != nil || d.CurrentStep != 3 {
		t.Fatalf("save step 3: %v %+v", err, d)
	}

	// Going back to step 1 keeps currentStep and only adds keys.
	d, err = uc.Save(ctx, d.ID, 1, map[string]any{"telefone": "119999"}, 0)
	if err != nil {
		t.Fatalf("save step 1 again: %v", err)
	}
	if d.CurrentStep != 3 || d.WizardData["1"]["nome"] != "Ana" || d.WizardData["1"]["telefone"] != "119999" || d.WizardData["3"]["defesa"] != "texto" {
		t.Fatalf("wizard data must accumulate: %+v", d)
	}
}

func TestServiceOrderDraftUseCase_SaveErrors(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewServiceOrderDraftMemoryRepository()
	uc := NewServiceOrderDraftUseCase(repo, money("49.90"), nil)
	d, _ := uc.Create(ctx, "C1")

	t.Run("step out of range", func(t *testing.T) {
		for _, step := range []int{0, 4} {
			_, err := uc.Save(ctx, d.ID, step, map[string]any{"a": 1}, 0)
			var verr *apperr.ValidationError
			if !errors.As(err, &verr) || verr.Field != "step" {
				t.Fatalf("step %d: expected validation error, got %v", step, err)
			}
		}
	})

	t.Run("unknown draft", func(t *testing.T) {
		_, err := uc.Save(ctx, "missing", 1, map[string]any{"a": 1}, 0)
		var nf *apperr.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		_, _ = uc.Save(ctx, d.ID, 1, map[string]any{"a": 1}, 0)
		_, err := uc.Save(ctx, d.ID, 1, map[string]any{"a": 2}, 1)
		var conflict *apperr.ConflictError
		if !errors.As(err, &conflict) || !errors.Is(err, apperr.ErrVersionConflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("not in rascunho", func(t *testing.T) {
		cur, _ := uc.Get(ctx, d.ID)
		_, _ = repo.Transition(ctx, d.ID, entities.DraftStatusRascunho, entities.DraftStatusCancelado, cur.Version, entities.DraftPatch{})

		_, err := uc.Save(ctx, d.ID, 1, map[string]any{"a": 3}, 0)
		var state *apperr.InvalidStateError
		if !errors.As(err, &state) || state.Status != string(entities.DraftStatusCancelado) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})
}

func TestServiceOrderDraftUseCase_GetListDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewServiceOrderDraftMemoryRepository()
	uc := NewServiceOrderDraftUseCase(repo, money("49.90"), nil)

	a, _ := uc.Create(ctx, "C1")
	b, _ := uc.Create(ctx, "C1")
	_, _ = uc.Create(ctx, "C2")

	if _, err := uc.Get(ctx, "nope"); apperr.ClassOf(err) != apperr.ClassState {
		t.Fatalf("expected not found, got %v", err)
	}

	list, err := uc.List(ctx, entities.DraftFilter{OwnerID: "C1"})
	if err != nil || len(list) != 2 {
		t.Fatalf("list: %v %d", err, len(list))
	}

	_, _ = repo.Transition(ctx, b.ID, entities.DraftStatusRascunho, entities.DraftStatusAguardandoPagamento, b.Version, entities.DraftPatch{PaymentRef: "P1"})
	err = uc.Delete(ctx, b.ID)
	var state *apperr.InvalidStateError
	if !errors.As(err, &state) || state.Operation != "delete" {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}

	if err := uc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, a.ID); err == nil {
		t.Fatal("deleted draft still readable")
	}

	pending, _ := uc.List(ctx, entities.DraftFilter{Status: entities.DraftStatusAguardandoPagamento})
	if len(pending) != 1 || pending[0].ID != b.ID {
		t.Fatalf("status filter: %+v", pending)
	}
}

func TestServiceOrderDraftUseCase_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceOrderDraftRepository(ctrl)
	uc := NewServiceOrderDraftUseCase(repo, money("49.90"), nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrderDraft{}, errors.New("db"))
	if _, err := uc.Create(context.Background(), "C1"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.ServiceOrderDraft{}, errors.New("db"))
	if _, err := uc.Get(context.Background(), "d1"); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}

	if _, err := uc.Create(context.Background(), " "); apperr.ClassOf(err) != apperr.ClassValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
