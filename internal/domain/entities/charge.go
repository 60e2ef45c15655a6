package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the normalized status of an external charge.
type PaymentStatus string

const (
	PaymentStatusPendente  PaymentStatus = "pendente"
	PaymentStatusAprovado  PaymentStatus = "aprovado"
	PaymentStatusNegado    PaymentStatus = "negado"
	PaymentStatusCancelado PaymentStatus = "cancelado"
)

// PaymentStatusFromProvider maps Mercado Pago statuses onto PaymentStatus.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized", "aprovado":
		return PaymentStatusAprovado
	case "rejected", "negado":
		return PaymentStatusNegado
	case "cancelled", "canceled", "refunded", "charged_back", "cancelado":
		return PaymentStatusCancelado
	default:
		return PaymentStatusPendente
	}
}

// ChargeRequest is what the lifecycle and the ledger ask the gateway to bill.
type ChargeRequest struct {
	Amount            decimal.Decimal
	ExternalReference string
	Description       string
	PayerEmail        string
	ExpiresAt         *time.Time
}

// Charge is an external payment as seen by the gateway.
//
// Raw keeps the provider body for traceability/audit.
type Charge struct {
	PaymentRef        string          `json:"payment_ref"`
	Status            PaymentStatus   `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	ExternalReference string          `json:"external_reference"`
	InvoiceURL        string          `json:"invoice_url,omitempty"`
	QRPayload         string          `json:"qr_payload,omitempty"`
	ExpiresAt         *time.Time      `json:"expires_at,omitempty"`
	Raw               json.RawMessage `json:"raw,omitempty"`
}

// ReferenceKind tells what an external_reference pays for.
type ReferenceKind string

const (
	ReferenceKindRecurso ReferenceKind = "recurso"
	ReferenceKindCredits ReferenceKind = "credits"
)

// ExternalReference is the parsed form of a charge's external_reference:
// "recurso:<draft id>" or "credits:<owner type>:<owner id>".
type ExternalReference struct {
	Kind      ReferenceKind
	DraftID   string
	OwnerType OwnerType
	OwnerID   string
}

func RecursoReference(draftID string) string {
	return string(ReferenceKindRecurso) + ":" + draftID
}

func CreditTopUpReference(ownerType OwnerType, ownerID string) string {
	return string(ReferenceKindCredits) + ":" + string(ownerType) + ":" + ownerID
}

func ParseExternalReference(ref string) (ExternalReference, bool) {
	parts := strings.SplitN(strings.TrimSpace(ref), ":", 3)
	switch {
	case len(parts) == 2 && parts[0] == string(ReferenceKindRecurso) && parts[1] != "":
		return ExternalReference{Kind: ReferenceKindRecurso, DraftID: parts[1]}, true
	case len(parts) == 3 && parts[0] == string(ReferenceKindCredits) && parts[2] != "":
		ot := OwnerType(parts[1])
		if !ot.Valid() {
			return ExternalReference{}, false
		}
		return ExternalReference{Kind: ReferenceKindCredits, OwnerType: ot, OwnerID: parts[2]}, true
	}
	return ExternalReference{}, false
}

// CreditsPaymentPrefix marks drafts paid from the credit ledger; the rest of the
// ref is the debit transaction id.
const CreditsPaymentPrefix = "credits:"

func CreditsPaymentRef(transactionID string) string {
	return CreditsPaymentPrefix + transactionID
}

func IsCreditsPaymentRef(ref string) bool {
	return strings.HasPrefix(ref, CreditsPaymentPrefix)
}
