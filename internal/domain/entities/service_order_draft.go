package entities

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DraftStatus is the lifecycle of a recurso (service order draft).
//
// Domain notes:
//   - Edges live in draftTransitions; nothing else decides whether a move is legal.
//   - concluido, cancelado and expirado are terminal.
type DraftStatus string

const (
	DraftStatusRascunho            DraftStatus = "rascunho"
	DraftStatusAguardandoPagamento DraftStatus = "aguardando_pagamento"
	DraftStatusEmPreenchimento     DraftStatus = "em_preenchimento"
	DraftStatusEmAnalise           DraftStatus = "em_analise"
	DraftStatusConcluido           DraftStatus = "concluido"
	DraftStatusCancelado           DraftStatus = "cancelado"
	DraftStatusExpirado            DraftStatus = "expirado"
)

var draftTransitions = map[DraftStatus][]DraftStatus{
	DraftStatusRascunho:            {DraftStatusAguardandoPagamento, DraftStatusCancelado},
	DraftStatusAguardandoPagamento: {DraftStatusEmPreenchimento, DraftStatusExpirado, DraftStatusCancelado},
	DraftStatusEmPreenchimento:     {DraftStatusEmAnalise, DraftStatusCancelado},
	DraftStatusEmAnalise:           {DraftStatusConcluido, DraftStatusCancelado},
}

// AllDraftStatuses lists every status in lifecycle order.
func AllDraftStatuses() []DraftStatus {
	return []DraftStatus{
		DraftStatusRascunho,
		DraftStatusAguardandoPagamento,
		DraftStatusEmPreenchimento,
		DraftStatusEmAnalise,
		DraftStatusConcluido,
		DraftStatusCancelado,
		DraftStatusExpirado,
	}
}

func ParseDraftStatus(s string) (DraftStatus, bool) {
	st := DraftStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllDraftStatuses() {
		if st == known {
			return st, true
		}
	}
	return "", false
}

func (s DraftStatus) IsTerminal() bool {
	switch s {
	case DraftStatusConcluido, DraftStatusCancelado, DraftStatusExpirado:
		return true
	}
	return false
}

// Deletable reports whether a draft in this status may be removed by its owner.
func (s DraftStatus) Deletable() bool {
	return s == DraftStatusRascunho || s == DraftStatusCancelado
}

func (s DraftStatus) CanTransitionTo(to DraftStatus) bool {
	for _, next := range draftTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodPix     PaymentMethod = "pix"
	PaymentMethodCredits PaymentMethod = "credits"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", PaymentMethodPix:
		return PaymentMethodPix, true
	case PaymentMethodCredits:
		return PaymentMethodCredits, true
	}
	return "", false
}

const (
	FirstWizardStep = 1
	LastWizardStep  = 3

	// IntakeKey holds the documents/data collected after payment.
	IntakeKey = "intake"
)

// StepKey is the wizardData key of a wizard step.
func StepKey(step int) string {
	return strconv.Itoa(step)
}

// WizardData is the payload collected by the wizard, keyed by step ("1".."3")
// and by IntakeKey after payment.
type WizardData map[string]map[string]any

// Merge adds fields into section key. Existing fields not present in fields are
// kept; nothing is ever removed.
func (w WizardData) Merge(key string, fields map[string]any) WizardData {
	out := w.Clone()
	section := out[key]
	if section == nil {
		section = make(map[string]any, len(fields))
		out[key] = section
	}
	for fk, fv := range fields {
		section[fk] = cloneValue(fv)
	}
	return out
}

// Clone deep-copies the sections, nested objects and arrays included.
func (w WizardData) Clone() WizardData {
	out := make(WizardData, len(w)+1)
	for k, section := range w {
		out[k] = CloneFields(section)
	}
	return out
}

// CloneFields deep-copies a JSON-shaped payload. nil stays nil.
func CloneFields(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneFields(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// MissingFields returns which of names are absent or blank in section key.
func (w WizardData) MissingFields(key string, names []string) []string {
	section := w[key]
	var missing []string
	for _, name := range names {
		v, ok := section[name]
		if !ok || v == nil || strings.TrimSpace(stringify(v)) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return "set"
	}
}

// RequiredStepFields are the fields a step must carry before payment can be
// requested.
var RequiredStepFields = map[int][]string{
	1: {"client_id"},
	2: {"numero_auto", "placa"},
}

// MinPaymentStep is the earliest wizard step from which a charge may be requested.
const MinPaymentStep = 2

// ServiceOrderDraft is a recurso: a fine-dispute case moving through intake,
// payment and processing.
//
// Storage model (DynamoDB, service_order_drafts):
//   - PK: id
//   - GSI owner_id-index: owner_id
//   - GSI payment_ref-index: payment_ref
//
// Status changes are compare-and-set on (status, version). WizardData only grows.
type ServiceOrderDraft struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	ClientID      string          `json:"client_id,omitempty"`
	Status        DraftStatus     `json:"status"`
	CurrentStep   int             `json:"current_step"`
	WizardData    WizardData      `json:"wizard_data"`
	Price         decimal.Decimal `json:"price"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	PaymentRef    string          `json:"payment_ref,omitempty"`
	InvoiceURL    string          `json:"invoice_url,omitempty"`
	QRPayload     string          `json:"qr_payload,omitempty"`
	Result        map[string]any  `json:"result,omitempty"`
	CancelReason  string          `json:"cancel_reason,omitempty"`
	Version       int64           `json:"version"`
	LastSavedAt   time.Time       `json:"last_saved_at"`
	CreatedAt     time.Time       `json:"created_at"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
}

// PaymentExpired reports whether the payment window has elapsed at now.
func (d ServiceOrderDraft) PaymentExpired(now time.Time) bool {
	return d.Status == DraftStatusAguardandoPagamento && d.ExpiresAt != nil && !now.Before(*d.ExpiresAt)
}

// DraftFilter narrows List. Empty fields match everything.
type DraftFilter struct {
	OwnerID string
	Status  DraftStatus
}

func (f DraftFilter) Matches(d ServiceOrderDraft) bool {
	if f.OwnerID != "" && d.OwnerID != f.OwnerID {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	return true
}

// DraftPatch carries the fields a status transition writes along with the new
// status. Nil/empty fields are left untouched.
type DraftPatch struct {
	PaymentMethod PaymentMethod
	PaymentRef    string
	InvoiceURL    string
	QRPayload     string
	Price         *decimal.Decimal
	ExpiresAt     *time.Time
	Result        map[string]any
	CancelReason  string
}

// Apply writes the patch onto d. Used by stores that build the new row in memory.
func (p DraftPatch) Apply(d ServiceOrderDraft) ServiceOrderDraft {
	if p.PaymentMethod != "" {
		d.PaymentMethod = p.PaymentMethod
	}
	if p.PaymentRef != "" {
		d.PaymentRef = p.PaymentRef
	}
	if p.InvoiceURL != "" {
		d.InvoiceURL = p.InvoiceURL
	}
	if p.QRPayload != "" {
		d.QRPayload = p.QRPayload
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.ExpiresAt != nil {
		exp := *p.ExpiresAt
		d.ExpiresAt = &exp
	}
	if p.Result != nil {
		d.Result = CloneFields(p.Result)
	}
	if p.CancelReason != "" {
		d.CancelReason = p.CancelReason
	}
	return d
}

// ResumeView is where the UI should take the user back to.
type ResumeView string

const (
	ResumeViewWizard     ResumeView = "wizard"
	ResumeViewPayment    ResumeView = "payment"
	ResumeViewIntake     ResumeView = "intake"
	ResumeViewProcessing ResumeView = "processing"
	ResumeViewResult     ResumeView = "result"
	ResumeViewNone       ResumeView = "none"
)

type ResumeTarget struct {
	DraftID  string      `json:"draft_id"`
	Status   DraftStatus `json:"status"`
	View     ResumeView  `json:"view"`
	Step     int         `json:"step,omitempty"`
	Terminal bool        `json:"terminal"`
}

// ResumeTargetFor maps a draft to the view that continues it.
func ResumeTargetFor(d ServiceOrderDraft) ResumeTarget {
	t := ResumeTarget{DraftID: d.ID, Status: d.Status, Terminal: d.Status.IsTerminal()}
	switch d.Status {
	case DraftStatusRascunho:
		t.View = ResumeViewWizard
		t.Step = d.CurrentStep
	case DraftStatusAguardandoPagamento:
		t.View = ResumeViewPayment
	case DraftStatusEmPreenchimento:
		t.View = ResumeViewIntake
	case DraftStatusEmAnalise:
		t.View = ResumeViewProcessing
	case DraftStatusConcluido:
		t.View = ResumeViewResult
	default:
		t.View = ResumeViewNone
	}
	return t
}
