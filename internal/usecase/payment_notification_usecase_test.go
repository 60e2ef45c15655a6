package usecase

import (
	"context"
	"errors"
	"testing"

	"recursos_api/internal/adapter/persistence/memory"
	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	mock_interfaces "recursos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentNotificationUseCase_Validations(t *testing.T) {
	t.Run("empty ref", func(t *testing.T) {
		uc := NewPaymentNotificationUseCase(nil, nil, nil, nil)
		_, err := uc.HandleNotification(context.Background(), " ")
		if apperr.ClassOf(err) != apperr.ClassValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentNotificationUseCase(nil, nil, nil, nil)
		_, err := uc.HandleNotification(context.Background(), "123")
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPaymentNotificationUseCase_Recurso(t *testing.T) {
	f := newLifecycleFixture(t)
	d := f.pendingDraft(t, "P1")
	uc := NewPaymentNotificationUseCase(f.gateway, f.lifecycle, f.ledger, nil)

	approved := entities.Charge{PaymentRef: "P1", Status: entities.PaymentStatusAprovado, ExternalReference: entities.RecursoReference(d.ID)}
	f.gateway.EXPECT().GetCharge(gomock.Any(), "P1").Return(approved, nil).Times(2)

	out, err := uc.HandleNotification(f.ctx, "P1")
	if err != nil || out.Action != NotificationActionConfirmed || out.DraftID != d.ID {
		t.Fatalf("first delivery: %v %+v", err, out)
	}

	// At-least-once delivery: the replay is harmless.
	out, err = uc.HandleNotification(f.ctx, "P1")
	if err != nil || out.Action != NotificationActionConfirmed {
		t.Fatalf("replay: %v %+v", err, out)
	}

	after, _ := f.drafts.Get(f.ctx, d.ID)
	if after.Status != entities.DraftStatusEmPreenchimento || after.Version != d.Version+1 {
		t.Fatalf("unexpected draft: %+v", after)
	}
}

func TestPaymentNotificationUseCase_RecursoRejected(t *testing.T) {
	f := newLifecycleFixture(t)
	d := f.pendingDraft(t, "P1")
	uc := NewPaymentNotificationUseCase(f.gateway, f.lifecycle, f.ledger, nil)

	f.gateway.EXPECT().GetCharge(gomock.Any(), "P1").
		Return(entities.Charge{PaymentRef: "P1", Status: entities.PaymentStatusNegado, ExternalReference: entities.RecursoReference(d.ID)}, nil)

	out, err := uc.HandleNotification(f.ctx, "P1")
	if err != nil || out.Action != NotificationActionCancelled {
		t.Fatalf("unexpected outcome: %v %+v", err, out)
	}
}

func TestPaymentNotificationUseCase_ApprovedAfterCancel(t *testing.T) {
	f := newLifecycleFixture(t)
	d := f.pendingDraft(t, "P1")
	f.gateway.EXPECT().CancelCharge(gomock.Any(), "P1").Return(nil)
	_, _ = f.lifecycle.Cancel(f.ctx, d.ID, "")
	uc := NewPaymentNotificationUseCase(f.gateway, f.lifecycle, f.ledger, nil)

	f.gateway.EXPECT().GetCharge(gomock.Any(), "P1").
		Return(entities.Charge{PaymentRef: "P1", Status: entities.PaymentStatusAprovado, ExternalReference: entities.RecursoReference(d.ID)}, nil)

	out, err := uc.HandleNotification(f.ctx, "P1")
	if err != nil || out.Action != NotificationActionIgnored {
		t.Fatalf("unexpected outcome: %v %+v", err, out)
	}
}

func TestPaymentNotificationUseCase_TopUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	ledger := NewCreditLedgerUseCase(memory.NewCreditLedgerMemoryRepository(), gateway, nil, nil)
	uc := NewPaymentNotificationUseCase(gateway, nil, ledger, nil)
	ctx := context.Background()

	charge := entities.Charge{
		PaymentRef:        "998877",
		Status:            entities.PaymentStatusAprovado,
		Amount:            money("200.00"),
		ExternalReference: entities.CreditTopUpReference(entities.OwnerTypeClient, "K1"),
	}
	gateway.EXPECT().GetCharge(gomock.Any(), "998877").Return(charge, nil).Times(2)

	out, err := uc.HandleNotification(ctx, "998877")
	if err != nil || out.Action != NotificationActionCredited {
		t.Fatalf("first delivery: %v %+v", err, out)
	}
	out, err = uc.HandleNotification(ctx, "998877")
	if err != nil || out.Action != NotificationActionAlreadyApplied {
		t.Fatalf("replay: %v %+v", err, out)
	}

	acct, _ := ledger.GetBalance(ctx, entities.OwnerTypeClient, "K1")
	if !acct.Balance.Equal(money("200.00")) || acct.Version != 1 {
		t.Fatalf("replay must credit once: %+v", acct)
	}
}

func TestPaymentNotificationUseCase_TopUpPendingAndUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentNotificationUseCase(gateway, nil, nil, nil)
	ctx := context.Background()

	gateway.EXPECT().GetCharge(gomock.Any(), "1").Return(entities.Charge{
		PaymentRef:        "1",
		Status:            entities.PaymentStatusPendente,
		ExternalReference: entities.CreditTopUpReference(entities.OwnerTypeCompany, "C1"),
	}, nil)
	out, err := uc.HandleNotification(ctx, "1")
	if err != nil || out.Action != NotificationActionPending {
		t.Fatalf("pending: %v %+v", err, out)
	}

	gateway.EXPECT().GetCharge(gomock.Any(), "2").Return(entities.Charge{PaymentRef: "2", Status: entities.PaymentStatusAprovado, ExternalReference: "os:42"}, nil)
	out, err = uc.HandleNotification(ctx, "2")
	if err != nil || out.Action != NotificationActionIgnored {
		t.Fatalf("unknown reference: %v %+v", err, out)
	}

	gwErr := &apperr.ExternalServiceError{Service: "mercadopago", Err: errors.New("503")}
	gateway.EXPECT().GetCharge(gomock.Any(), "3").Return(entities.Charge{}, gwErr)
	if _, err := uc.HandleNotification(ctx, "3"); !errors.Is(err, gwErr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
}
