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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxTransitionAttempts bounds the re-read/retry loop when a transition loses a
// compare-and-set against a write that left the status unchanged (autosave).
const maxTransitionAttempts = 3

// IRecursoLifecycleUseCase drives a recurso through its status machine.
//
//   - RequestPayment: rascunho -> aguardando_pagamento, all-or-nothing. Paying
//     with credits confirms right away (ends in em_preenchimento).
//   - ConfirmPayment / ApplyChargeStatus: idempotent by paymentRef.
//   - AttachDocument: extraction failures come back as an advisory, never as an
//     error, and leave the draft unchanged.
//   - Cancel never refunds a completed debit.
type IRecursoLifecycleUseCase interface {
	RequestPayment(ctx context.Context, id string, method entities.PaymentMethod, ownerType entities.OwnerType) (entities.ServiceOrderDraft, error)
	ConfirmPayment(ctx context.Context, paymentRef string) (entities.ServiceOrderDraft, error)
	ApplyChargeStatus(ctx context.Context, charge entities.Charge) (entities.ServiceOrderDraft, error)
	SyncPayment(ctx context.Context, id string) (entities.ServiceOrderDraft, error)
	SaveIntake(ctx context.Context, id string, data map[string]any, expectedVersion int64) (entities.ServiceOrderDraft, error)
	AttachDocument(ctx context.Context, id string, step int, doc entities.Document) (entities.ServiceOrderDraft, *entities.ExtractionAdvisory, error)
	StartAnalysis(ctx context.Context, id string) (entities.ServiceOrderDraft, error)
	Complete(ctx context.Context, id string, result map[string]any) (entities.ServiceOrderDraft, error)
	Cancel(ctx context.Context, id string, reason string) (entities.ServiceOrderDraft, error)
	Expire(ctx context.Context, id string) (entities.ServiceOrderDraft, error)
	ExpireOverdue(ctx context.Context, now time.Time) ([]entities.ServiceOrderDraft, error)
	ResumeTarget(ctx context.Context, id string) (entities.ResumeTarget, error)
}

// RecursoLifecycleConfig carries the lifecycle's configuration inputs.
type RecursoLifecycleConfig struct {
	Price             decimal.Decimal
	PaymentWindow     time.Duration
	PaymentTimeout    time.Duration
	ExtractionTimeout time.Duration
}

type RecursoLifecycleUseCase struct {
	drafts    interfaces.IServiceOrderDraftRepository
	ledger    ICreditLedgerUseCase
	gateway   interfaces.IPaymentGateway
	extractor interfaces.IDocumentExtractor
	cfg       RecursoLifecycleConfig
	logger    *zap.Logger
	metrics   *observability.Metrics
	now       func() time.Time
}

var _ IRecursoLifecycleUseCase = (*RecursoLifecycleUseCase)(nil)

func NewRecursoLifecycleUseCase(
	drafts interfaces.IServiceOrderDraftRepository,
	ledger ICreditLedgerUseCase,
	gateway interfaces.IPaymentGateway,
	extractor interfaces.IDocumentExtractor,
	cfg RecursoLifecycleConfig,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *RecursoLifecycleUseCase {
	return &RecursoLifecycleUseCase{
		drafts:    drafts,
		ledger:    ledger,
		gateway:   gateway,
		extractor: extractor,
		cfg:       cfg,
		logger:    observability.OrNop(logger).Named("recurso.usecase"),
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *RecursoLifecycleUseCase) RequestPayment(ctx context.Context, id string, method entities.PaymentMethod, ownerType entities.OwnerType) (entities.ServiceOrderDraft, error) {
	start := time.Now()
	defer func() { u.metrics.ObserveDuration("recurso_request_payment", time.Since(start)) }()

	d, err := getDraft(ctx, u.drafts, id)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if !d.Status.CanTransitionTo(entities.DraftStatusAguardandoPagamento) {
		return entities.ServiceOrderDraft{}, invalidTransition(d, entities.DraftStatusAguardandoPagamento)
	}
	if err := requirePaymentFields(d); err != nil {
		u.logger.Info("payment requested with incomplete wizard",
			zap.String("draft_id", d.ID),
			zap.Int("current_step", d.CurrentStep),
			zap.Error(err))
		return entities.ServiceOrderDraft{}, err
	}

	switch method {
	case entities.PaymentMethodPix:
		return u.requestPix(ctx, d)
	case entities.PaymentMethodCredits:
		return u.payWithCredits(ctx, d, ownerType)
	default:
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "payment_method", Message: "must be pix or credits"}
	}
}

// requestPix creates the charge first and persists it second; a failed write
// cancels the charge so no orphan stays billable.
func (u *RecursoLifecycleUseCase) requestPix(ctx context.Context, d entities.ServiceOrderDraft) (entities.ServiceOrderDraft, error) {
	if u.gateway == nil {
		return entities.ServiceOrderDraft{}, ErrPaymentGatewayNotConfigured
	}

	price := u.priceOf(d)
	expiresAt := u.now().Add(u.cfg.PaymentWindow)

	cctx, cancel := withTimeout(ctx, u.cfg.PaymentTimeout)
	charge, err := u.gateway.CreateCharge(cctx, entities.ChargeRequest{
		Amount:            price,
		ExternalReference: entities.RecursoReference(d.ID),
		Description:       "Recurso de multa " + d.ID,
		ExpiresAt:         &expiresAt,
	})
	cancel()
	if err != nil {
		u.metrics.IncExternalError("payment_gateway")
		u.logger.Error("charge creation failed, draft left in rascunho",
			zap.String("draft_id", d.ID),
			zap.String("amount", price.StringFixed(2)),
			zap.Error(err))
		return entities.ServiceOrderDraft{}, err
	}

	next, err := u.transition(ctx, d, entities.DraftStatusAguardandoPagamento, entities.DraftPatch{
		PaymentMethod: entities.PaymentMethodPix,
		PaymentRef:    charge.PaymentRef,
		InvoiceURL:    charge.InvoiceURL,
		QRPayload:     charge.QRPayload,
		Price:         &price,
		ExpiresAt:     &expiresAt,
	})
	if err != nil {
		u.logger.Error("persisting charge failed, cancelling charge",
			zap.String("draft_id", d.ID),
			zap.String("payment_ref", charge.PaymentRef),
			zap.Error(err))
		u.cancelCharge(ctx, d.ID, charge.PaymentRef)
		return entities.ServiceOrderDraft{}, err
	}
	return next, nil
}

// payWithCredits debits the paying account, records the debit as the payment
// and confirms in the same call. A failed write is compensated with an explicit
// refund credit.
func (u *RecursoLifecycleUseCase) payWithCredits(ctx context.Context, d entities.ServiceOrderDraft, ownerType entities.OwnerType) (entities.ServiceOrderDraft, error) {
	if u.ledger == nil {
		return entities.ServiceOrderDraft{}, ErrCreditLedgerNotConfigured
	}
	ownerID, err := creditsAccount(d, ownerType)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}

	price := u.priceOf(d)
	_, debit, err := u.ledger.Consume(ctx, ownerType, ownerID, price, "recurso "+d.ID)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}

	ref := entities.CreditsPaymentRef(debit.ID)
	expiresAt := u.now().Add(u.cfg.PaymentWindow)
	pending, err := u.transition(ctx, d, entities.DraftStatusAguardandoPagamento, entities.DraftPatch{
		PaymentMethod: entities.PaymentMethodCredits,
		PaymentRef:    ref,
		Price:         &price,
		ExpiresAt:     &expiresAt,
	})
	if err != nil {
		u.logger.Error("persisting credits payment failed, refunding debit",
			zap.String("draft_id", d.ID),
			zap.String("transaction_id", debit.ID),
			zap.Error(err))
		if _, rerr := u.ledger.Refund(context.WithoutCancel(ctx), ownerType, ownerID, price, "recurso "+d.ID+" payment not recorded", debit.ID); rerr != nil {
			u.logger.Error("compensating refund failed",
				zap.String("draft_id", d.ID),
				zap.String("transaction_id", debit.ID),
				zap.String("amount", price.StringFixed(2)),
				zap.Error(rerr))
		}
		return entities.ServiceOrderDraft{}, err
	}

	// The debit is recorded on the draft now; if confirming fails, SyncPayment
	// or ConfirmPayment(ref) finishes the job without a second debit.
	return u.confirm(ctx, pending, ref)
}

func (u *RecursoLifecycleUseCase) ConfirmPayment(ctx context.Context, paymentRef string) (entities.ServiceOrderDraft, error) {
	d, err := u.draftByPaymentRef(ctx, paymentRef)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	return u.confirm(ctx, d, d.PaymentRef)
}

// ApplyChargeStatus applies a gateway charge to the draft that holds its
// paymentRef: approved confirms, rejected/cancelled cancels a draft still
// waiting for it, pending only checks the payment window.
func (u *RecursoLifecycleUseCase) ApplyChargeStatus(ctx context.Context, charge entities.Charge) (entities.ServiceOrderDraft, error) {
	d, err := u.draftByPaymentRef(ctx, charge.PaymentRef)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if ref, ok := entities.ParseExternalReference(charge.ExternalReference); ok && ref.Kind == entities.ReferenceKindRecurso && ref.DraftID != d.ID {
		u.logger.Warn("charge external_reference points to another draft",
			zap.String("payment_ref", charge.PaymentRef),
			zap.String("external_reference", charge.ExternalReference),
			zap.String("draft_id", d.ID))
	}
	return u.applyCharge(ctx, d, charge)
}

func (u *RecursoLifecycleUseCase) SyncPayment(ctx context.Context, id string) (entities.ServiceOrderDraft, error) {
	d, err := getDraft(ctx, u.drafts, id)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if d.Status != entities.DraftStatusAguardandoPagamento {
		return d, nil
	}
	if entities.IsCreditsPaymentRef(d.PaymentRef) {
		return u.confirm(ctx, d, d.PaymentRef)
	}
	if u.gateway == nil {
		return entities.ServiceOrderDraft{}, ErrPaymentGatewayNotConfigured
	}

	cctx, cancel := withTimeout(ctx, u.cfg.PaymentTimeout)
	charge, err := u.gateway.GetCharge(cctx, d.PaymentRef)
	cancel()
	if err != nil {
		u.metrics.IncExternalError("payment_gateway")
		u.logger.Warn("payment sync failed",
			zap.String("draft_id", d.ID),
			zap.String("payment_ref", d.PaymentRef),
			zap.Error(err))
		return entities.ServiceOrderDraft{}, err
	}
	return u.applyCharge(ctx, d, charge)
}

func (u *RecursoLifecycleUseCase) applyCharge(ctx context.Context, d entities.ServiceOrderDraft, charge entities.Charge) (entities.ServiceOrderDraft, error) {
	switch charge.Status {
	case entities.PaymentStatusAprovado:
		return u.confirm(ctx, d, d.PaymentRef)
	case entities.PaymentStatusNegado, entities.PaymentStatusCancelado:
		if d.Status != entities.DraftStatusAguardandoPagamento {
			return d, nil
		}
		return u.transition(ctx, d, entities.DraftStatusCancelado, entities.DraftPatch{
			CancelReason: "payment " + string(charge.Status),
		})
	default:
		if d.PaymentExpired(u.now()) {
			return u.expire(ctx, d)
		}
		return d, nil
	}
}

func (u *RecursoLifecycleUseCase) SaveIntake(ctx context.Context, id string, data map[string]any, expectedVersion int64) (entities.ServiceOrderDraft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "id", Message: "required"}
	}
	if len(data) == 0 {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "data", Message: "required"}
	}
	if expectedVersion < 0 {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "version", Message: "must not be negative"}
	}

	saved, err := u.drafts.MergeData(ctx, id, interfaces.DraftDataUpdate{
		Key:             entities.IntakeKey,
		Fields:          data,
		RequiredStatus:  entities.DraftStatusEmPreenchimento,
		ExpectedVersion: expectedVersion,
		SavedAt:         u.now(),
	})
	if err != nil {
		u.logger.Warn("save intake failed", zap.String("draft_id", id), zap.Error(err))
		return entities.ServiceOrderDraft{}, err
	}
	return saved, nil
}

func (u *RecursoLifecycleUseCase) AttachDocument(ctx context.Context, id string, step int, doc entities.Document) (entities.ServiceOrderDraft, *entities.ExtractionAdvisory, error) {
	d, err := getDraft(ctx, u.drafts, id)
	if err != nil {
		return entities.ServiceOrderDraft{}, nil, err
	}
	if len(doc.Content) == 0 {
		return entities.ServiceOrderDraft{}, nil, &apperr.ValidationError{Field: "file", Message: "required"}
	}

	upd := interfaces.DraftDataUpdate{RequiredStatus: d.Status}
	switch d.Status {
	case entities.DraftStatusRascunho:
		if step < entities.FirstWizardStep || step > entities.LastWizardStep {
			return entities.ServiceOrderDraft{}, nil, &apperr.ValidationError{Field: "step", Message: "must be between 1 and 3"}
		}
		upd.Key = entities.StepKey(step)
		upd.Step = step
	case entities.DraftStatusEmPreenchimento:
		upd.Key = entities.IntakeKey
	default:
		return entities.ServiceOrderDraft{}, nil, &apperr.InvalidStateError{DraftID: d.ID, Status: string(d.Status), Operation: "attach_document"}
	}

	if u.extractor == nil {
		return d, &entities.ExtractionAdvisory{Message: "document extraction is not configured"}, nil
	}

	ectx, cancel := withTimeout(ctx, u.cfg.ExtractionTimeout)
	fields, err := u.extractor.Extract(ectx, doc)
	cancel()
	if err != nil {
		u.metrics.IncExternalError("extraction")
		u.logger.Warn("document extraction failed",
			zap.String("draft_id", d.ID),
			zap.String("file_name", doc.FileName),
			zap.Error(err))
		return d, &entities.ExtractionAdvisory{
			Message:   err.Error(),
			Retryable: apperr.IsRetryable(err) || errors.Is(err, context.DeadlineExceeded),
		}, nil
	}

	// Extracted values never overwrite what the user already typed. The merge is
	// pinned to the version the filter saw; an autosave in between re-filters.
	for attempt := 1; ; attempt++ {
		upd.Fields = missingOnly(d.WizardData[upd.Key], fields)
		if len(upd.Fields) == 0 {
			return d, &entities.ExtractionAdvisory{Message: "no new fields extracted"}, nil
		}
		upd.ClientID = ""
		if upd.Step == entities.FirstWizardStep {
			if clientID, ok := upd.Fields["client_id"].(string); ok {
				upd.ClientID = strings.TrimSpace(clientID)
			}
		}
		upd.ExpectedVersion = d.Version
		upd.SavedAt = u.now()

		saved, err := u.drafts.MergeData(ctx, d.ID, upd)
		if err == nil {
			d = saved
			break
		}
		var conflict *apperr.ConflictError
		if !errors.As(err, &conflict) || attempt >= maxTransitionAttempts {
			return entities.ServiceOrderDraft{}, nil, err
		}
		if d, err = getDraft(ctx, u.drafts, d.ID); err != nil {
			return entities.ServiceOrderDraft{}, nil, err
		}
	}

	u.logger.Info("document fields merged",
		zap.String("draft_id", d.ID),
		zap.String("section", upd.Key),
		zap.Int("fields", len(upd.Fields)))
	return d, nil, nil
}

func (u *RecursoLifecycleUseCase) StartAnalysis(ctx context.Context, id string) (entities.ServiceOrderDraft, error) {
	d, err := getDraft(ctx, u.drafts, id)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if !d.Status.CanTransitionTo(entities.DraftStatusEmAnalise) {
		return entities.ServiceOrderDraft{}, invalidTransition(d, entities.DraftStatusEmAnalise)
	}
	if len(d.WizardData[entities.IntakeKey]) == 0 {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: entities.IntakeKey, Message: "no documents or data collected"}
	}
	return u.transition(ctx, d, entities.DraftStatusEmAnalise, entities.DraftPatch{})
}

func (u *RecursoLifecycleUseCase) Complete(ctx context.Context, id string, result map[string]any) (entities.ServiceOrderDraft, error) {
	if len(result) == 0 {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "result", Message: "required"}
	}
	d, err := getDraft(ctx, u.drafts, id)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	return u.transition(ctx, d, entities.DraftStatusConcluido, entities.DraftPatch{Result: result})
}

func (u *RecursoLifecycleUseCase) Cancel(ctx context.Context, id string, reason string) (entities.ServiceOrderDraft, error) {
	d, err := getDraft(ctx, u.drafts, id)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "cancelled by user"
	}

	next, err := u.transition(ctx, d, entities.DraftStatusCancelado, entities.DraftPatch{CancelReason: reason})
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if d.Status == entities.DraftStatusAguardandoPagamento {
		u.cancelPendingCharge(ctx, next)
	}
	return next, nil
}

func (u *RecursoLifecycleUseCase) Expire(ctx context.Context, id string) (entities.ServiceOrderDraft, error) {
	d, err := getDraft(ctx, u.drafts, id)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if d.Status != entities.DraftStatusAguardandoPagamento {
		return entities.ServiceOrderDraft{}, invalidTransition(d, entities.DraftStatusExpirado)
	}
	if entities.IsCreditsPaymentRef(d.PaymentRef) {
		return u.finishCreditsPayment(ctx, d)
	}
	if !d.PaymentExpired(u.now()) {
		return entities.ServiceOrderDraft{}, &apperr.InvalidStateError{DraftID: d.ID, Status: string(d.Status), Operation: "expire before payment window ends"}
	}
	return u.expire(ctx, d)
}

// ExpireOverdue sweeps drafts whose payment window ended before now. Drafts
// that moved on meanwhile (confirmed, cancelled) are skipped. A draft already
// paid with credits is confirmed instead: its debit is on the ledger.
func (u *RecursoLifecycleUseCase) ExpireOverdue(ctx context.Context, now time.Time) ([]entities.ServiceOrderDraft, error) {
	waiting, err := u.drafts.List(ctx, entities.DraftFilter{Status: entities.DraftStatusAguardandoPagamento})
	if err != nil {
		return nil, err
	}

	expired := make([]entities.ServiceOrderDraft, 0)
	for _, d := range waiting {
		if !d.PaymentExpired(now) {
			continue
		}
		if entities.IsCreditsPaymentRef(d.PaymentRef) {
			if _, err := u.finishCreditsPayment(ctx, d); err != nil {
				if apperr.ClassOf(err) == apperr.ClassState {
					u.logger.Info("skipping draft in expiry sweep", zap.String("draft_id", d.ID), zap.Error(err))
					continue
				}
				return expired, err
			}
			continue
		}
		next, err := u.expire(ctx, d)
		if err != nil {
			if apperr.ClassOf(err) == apperr.ClassState {
				u.logger.Info("skipping draft in expiry sweep", zap.String("draft_id", d.ID), zap.Error(err))
				continue
			}
			return expired, err
		}
		expired = append(expired, next)
	}

	u.logger.Info("expiry sweep done", zap.Int("candidates", len(waiting)), zap.Int("expired", len(expired)))
	return expired, nil
}

func (u *RecursoLifecycleUseCase) ResumeTarget(ctx context.Context, id string) (entities.ResumeTarget, error) {
	d, err := getDraft(ctx, u.drafts, id)
	if err != nil {
		return entities.ResumeTarget{}, err
	}
	return entities.ResumeTargetFor(d), nil
}

// finishCreditsPayment confirms a draft left waiting after its credits debit
// was recorded.
func (u *RecursoLifecycleUseCase) finishCreditsPayment(ctx context.Context, d entities.ServiceOrderDraft) (entities.ServiceOrderDraft, error) {
	u.logger.Warn("credits payment left unconfirmed, confirming",
		zap.String("draft_id", d.ID),
		zap.String("payment_ref", d.PaymentRef))
	return u.confirm(ctx, d, d.PaymentRef)
}

func (u *RecursoLifecycleUseCase) expire(ctx context.Context, d entities.ServiceOrderDraft) (entities.ServiceOrderDraft, error) {
	next, err := u.transition(ctx, d, entities.DraftStatusExpirado, entities.DraftPatch{})
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	u.cancelPendingCharge(ctx, next)
	return next, nil
}

// confirm moves a draft to em_preenchimento. A draft already past that point
// with the same paymentRef is returned as is.
func (u *RecursoLifecycleUseCase) confirm(ctx context.Context, d entities.ServiceOrderDraft, paymentRef string) (entities.ServiceOrderDraft, error) {
	if paymentConfirmed(d, paymentRef) {
		u.logger.Debug("payment confirmation replay", zap.String("draft_id", d.ID), zap.String("payment_ref", paymentRef))
		return d, nil
	}

	next, err := u.transition(ctx, d, entities.DraftStatusEmPreenchimento, entities.DraftPatch{})
	if err != nil {
		var invalid *apperr.InvalidTransitionError
		if errors.As(err, &invalid) {
			if cur, gerr := getDraft(ctx, u.drafts, d.ID); gerr == nil && paymentConfirmed(cur, paymentRef) {
				return cur, nil
			}
		}
		return entities.ServiceOrderDraft{}, err
	}
	u.logger.Info("payment confirmed", zap.String("draft_id", d.ID), zap.String("payment_ref", paymentRef))
	return next, nil
}

// transition is the only writer of Status. It re-reads and retries when the
// compare-and-set lost to a write that kept the status, and reports
// InvalidTransition once the status itself moved.
func (u *RecursoLifecycleUseCase) transition(ctx context.Context, d entities.ServiceOrderDraft, to entities.DraftStatus, patch entities.DraftPatch) (entities.ServiceOrderDraft, error) {
	for attempt := 1; ; attempt++ {
		if !d.Status.CanTransitionTo(to) {
			return entities.ServiceOrderDraft{}, invalidTransition(d, to)
		}

		next, err := u.drafts.Transition(ctx, d.ID, d.Status, to, d.Version, patch)
		if err == nil {
			u.metrics.IncDraftTransition(string(d.Status), string(to))
			u.logger.Info("draft transition",
				zap.String("draft_id", d.ID),
				zap.String("from", string(d.Status)),
				zap.String("to", string(to)),
				zap.Int64("version", next.Version))
			return next, nil
		}
		if !errors.Is(err, apperr.ErrVersionConflict) {
			return entities.ServiceOrderDraft{}, err
		}
		if attempt == maxTransitionAttempts {
			return entities.ServiceOrderDraft{}, &apperr.ConflictError{Resource: "draft", ID: d.ID, ExpectedVersion: d.Version}
		}

		cur, gerr := getDraft(ctx, u.drafts, d.ID)
		if gerr != nil {
			return entities.ServiceOrderDraft{}, gerr
		}
		if cur.Status != d.Status {
			return entities.ServiceOrderDraft{}, invalidTransition(cur, to)
		}
		d = cur
	}
}

func (u *RecursoLifecycleUseCase) draftByPaymentRef(ctx context.Context, paymentRef string) (entities.ServiceOrderDraft, error) {
	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return entities.ServiceOrderDraft{}, &apperr.ValidationError{Field: "payment_ref", Message: "required"}
	}
	d, err := u.drafts.GetByPaymentRef(ctx, paymentRef)
	if err != nil {
		return entities.ServiceOrderDraft{}, err
	}
	if d.ID == "" {
		return entities.ServiceOrderDraft{}, &apperr.NotFoundError{Resource: "payment", ID: paymentRef}
	}
	return d, nil
}

// cancelPendingCharge cancels the gateway charge of a draft that no longer
// waits for it. Best effort: failures are logged only.
func (u *RecursoLifecycleUseCase) cancelPendingCharge(ctx context.Context, d entities.ServiceOrderDraft) {
	if d.PaymentMethod != entities.PaymentMethodPix || d.PaymentRef == "" || entities.IsCreditsPaymentRef(d.PaymentRef) {
		return
	}
	u.cancelCharge(ctx, d.ID, d.PaymentRef)
}

func (u *RecursoLifecycleUseCase) cancelCharge(ctx context.Context, draftID, paymentRef string) {
	if u.gateway == nil {
		return
	}
	cctx, cancel := withTimeout(context.WithoutCancel(ctx), u.cfg.PaymentTimeout)
	defer cancel()
	if err := u.gateway.CancelCharge(cctx, paymentRef); err != nil {
		u.metrics.IncExternalError("payment_gateway")
		u.logger.Warn("cancel charge failed",
			zap.String("draft_id", draftID),
			zap.String("payment_ref", paymentRef),
			zap.Error(err))
	}
}

func (u *RecursoLifecycleUseCase) priceOf(d entities.ServiceOrderDraft) decimal.Decimal {
	if d.Price.IsPositive() {
		return d.Price
	}
	return u.cfg.Price
}

// requirePaymentFields checks every step up to CurrentStep for its required
// fields.
func requirePaymentFields(d entities.ServiceOrderDraft) error {
	if d.CurrentStep < entities.MinPaymentStep {
		return &apperr.MissingFieldsError{
			DraftID: d.ID,
			Step:    entities.MinPaymentStep,
			Fields:  entities.RequiredStepFields[entities.MinPaymentStep],
		}
	}
	for step := entities.FirstWizardStep; step <= d.CurrentStep; step++ {
		missing := d.WizardData.MissingFields(entities.StepKey(step), entities.RequiredStepFields[step])
		if len(missing) > 0 {
			return &apperr.MissingFieldsError{DraftID: d.ID, Step: step, Fields: missing}
		}
	}
	return nil
}

func paymentConfirmed(d entities.ServiceOrderDraft, paymentRef string) bool {
	if paymentRef == "" || d.PaymentRef != paymentRef {
		return false
	}
	switch d.Status {
	case entities.DraftStatusEmPreenchimento, entities.DraftStatusEmAnalise, entities.DraftStatusConcluido:
		return true
	}
	return false
}

// creditsAccount picks the account a credits payment draws from: the draft's
// owner for company, its client for client.
func creditsAccount(d entities.ServiceOrderDraft, ownerType entities.OwnerType) (string, error) {
	switch ownerType {
	case entities.OwnerTypeCompany:
		return d.OwnerID, nil
	case entities.OwnerTypeClient:
		if strings.TrimSpace(d.ClientID) == "" {
			return "", &apperr.ValidationError{Field: "client_id", Message: "required to pay with client credits"}
		}
		return d.ClientID, nil
	default:
		return "", &apperr.ValidationError{Field: "owner_type", Message: "must be company or client"}
	}
}

func invalidTransition(d entities.ServiceOrderDraft, to entities.DraftStatus) error {
	return &apperr.InvalidTransitionError{DraftID: d.ID, From: string(d.Status), To: string(to)}
}

func missingOnly(existing map[string]any, extracted map[string]any) map[string]any {
	out := make(map[string]any, len(extracted))
	for k, v := range extracted {
		if cur, ok := existing[k]; ok && cur != nil {
			if s, isStr := cur.(string); !isStr || strings.TrimSpace(s) != "" {
				continue
			}
		}
		out[k] = v
	}
	return out
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
