package usecase

import (
	"context"
	"errors"
	"strings"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Notification actions reported back to the webhook caller.
const (
	NotificationActionConfirmed      = "confirmed"
	NotificationActionCancelled      = "cancelled"
	NotificationActionExpired        = "expired"
	NotificationActionPending        = "pending"
	NotificationActionCredited       = "credited"
	NotificationActionAlreadyApplied = "already_applied"
	NotificationActionIgnored        = "ignored"
)

// NotificationOutcome describes what a gateway notification did.
type NotificationOutcome struct {
	PaymentRef        string                 `json:"payment_ref"`
	Status            entities.PaymentStatus `json:"status"`
	ExternalReference string                 `json:"external_reference,omitempty"`
	Action            string                 `json:"action"`
	DraftID           string                 `json:"draft_id,omitempty"`
}

// IPaymentNotificationUseCase handles gateway webhooks. Delivery is
// at-least-once: every path is safe to replay.
type IPaymentNotificationUseCase interface {
	HandleNotification(ctx context.Context, paymentRef string) (NotificationOutcome, error)
}

type PaymentNotificationUseCase struct {
	gateway   interfaces.IPaymentGateway
	lifecycle IRecursoLifecycleUseCase
	ledger    ICreditLedgerUseCase
	logger    *zap.Logger
}

var _ IPaymentNotificationUseCase = (*PaymentNotificationUseCase)(nil)

func NewPaymentNotificationUseCase(gateway interfaces.IPaymentGateway, lifecycle IRecursoLifecycleUseCase, ledger ICreditLedgerUseCase, logger *zap.Logger) *PaymentNotificationUseCase {
	return &PaymentNotificationUseCase{
		gateway:   gateway,
		lifecycle: lifecycle,
		ledger:    ledger,
		logger:    observability.OrNop(logger).Named("payment.notification"),
	}
}

// HandleNotification reads the charge back from the gateway (the webhook body
// is never trusted for status) and routes it by external_reference.
func (u *PaymentNotificationUseCase) HandleNotification(ctx context.Context, paymentRef string) (NotificationOutcome, error) {
	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return NotificationOutcome{}, &apperr.ValidationError{Field: "payment_ref", Message: "required"}
	}
	if u.gateway == nil {
		return NotificationOutcome{}, ErrPaymentGatewayNotConfigured
	}

	charge, err := u.gateway.GetCharge(ctx, paymentRef)
	if err != nil {
		u.logger.Warn("notification: get charge failed", zap.String("payment_ref", paymentRef), zap.Error(err))
		return NotificationOutcome{}, err
	}
	if charge.PaymentRef == "" {
		charge.PaymentRef = paymentRef
	}

	out := NotificationOutcome{
		PaymentRef:        charge.PaymentRef,
		Status:            charge.Status,
		ExternalReference: charge.ExternalReference,
	}

	ref, ok := entities.ParseExternalReference(charge.ExternalReference)
	if !ok {
		u.logger.Warn("notification: unknown external_reference, ignoring",
			zap.String("payment_ref", charge.PaymentRef),
			zap.String("external_reference", charge.ExternalReference))
		out.Action = NotificationActionIgnored
		return out, nil
	}

	switch ref.Kind {
	case entities.ReferenceKindRecurso:
		return u.handleRecurso(ctx, out, ref, charge)
	case entities.ReferenceKindCredits:
		return u.handleTopUp(ctx, out, ref, charge)
	}
	out.Action = NotificationActionIgnored
	return out, nil
}

func (u *PaymentNotificationUseCase) handleRecurso(ctx context.Context, out NotificationOutcome, ref entities.ExternalReference, charge entities.Charge) (NotificationOutcome, error) {
	out.DraftID = ref.DraftID
	if u.lifecycle == nil {
		return out, errors.New("recurso lifecycle not configured")
	}

	d, err := u.lifecycle.ApplyChargeStatus(ctx, charge)
	if err != nil {
		var invalid *apperr.InvalidTransitionError
		if errors.As(err, &invalid) {
			// Paid after the draft was cancelled or expired: nothing to move, the
			// payment needs manual handling.
			u.logger.Error("notification: payment arrived for a draft that cannot accept it",
				zap.String("payment_ref", charge.PaymentRef),
				zap.String("draft_id", ref.DraftID),
				zap.String("payment_status", string(charge.Status)),
				zap.Error(err))
			out.Action = NotificationActionIgnored
			return out, nil
		}
		return out, err
	}

	out.DraftID = d.ID
	switch {
	case charge.Status == entities.PaymentStatusAprovado:
		out.Action = NotificationActionConfirmed
	case d.Status == entities.DraftStatusCancelado:
		out.Action = NotificationActionCancelled
	case d.Status == entities.DraftStatusExpirado:
		out.Action = NotificationActionExpired
	default:
		out.Action = NotificationActionPending
	}
	u.logger.Info("notification applied to recurso",
		zap.String("payment_ref", charge.PaymentRef),
		zap.String("draft_id", d.ID),
		zap.String("draft_status", string(d.Status)),
		zap.String("action", out.Action))
	return out, nil
}

func (u *PaymentNotificationUseCase) handleTopUp(ctx context.Context, out NotificationOutcome, ref entities.ExternalReference, charge entities.Charge) (NotificationOutcome, error) {
	if charge.Status != entities.PaymentStatusAprovado {
		out.Action = NotificationActionPending
		if charge.Status == entities.PaymentStatusNegado || charge.Status == entities.PaymentStatusCancelado {
			out.Action = NotificationActionIgnored
		}
		return out, nil
	}
	if u.ledger == nil {
		return out, ErrCreditLedgerNotConfigured
	}

	acct, err := u.ledger.Purchase(ctx, ref.OwnerType, ref.OwnerID, charge.Amount, charge.PaymentRef)
	if err != nil {
		var duplicate *apperr.DuplicatePaymentError
		if errors.As(err, &duplicate) {
			u.logger.Info("notification: top-up already applied", zap.String("payment_ref", charge.PaymentRef))
			out.Action = NotificationActionAlreadyApplied
			return out, nil
		}
		return out, err
	}

	u.logger.Info("notification: credits purchased",
		zap.String("payment_ref", charge.PaymentRef),
		zap.String("owner_type", string(ref.OwnerType)),
		zap.String("owner_id", ref.OwnerID),
		zap.String("balance", acct.Balance.StringFixed(2)))
	out.Action = NotificationActionCredited
	return out, nil
}
