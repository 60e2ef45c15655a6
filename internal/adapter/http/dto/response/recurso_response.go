package response

import (
	"time"

	"recursos_api/internal/domain/entities"
)

type RecursoResponse struct {
	ID            string                `json:"id"`
	OwnerID       string                `json:"owner_id"`
	ClientID      string                `json:"client_id,omitempty"`
	Status        string                `json:"status"`
	CurrentStep   int                   `json:"current_step"`
	WizardData    entities.WizardData   `json:"wizard_data"`
	Price         string                `json:"price"`
	PaymentMethod string                `json:"payment_method,omitempty"`
	PaymentRef    string                `json:"payment_ref,omitempty"`
	InvoiceURL    string                `json:"invoice_url,omitempty"`
	QRPayload     string                `json:"qr_payload,omitempty"`
	Result        map[string]any        `json:"result,omitempty"`
	CancelReason  string                `json:"cancel_reason,omitempty"`
	Version       int64                 `json:"version"`
	LastSavedAt   time.Time             `json:"last_saved_at"`
	CreatedAt     time.Time             `json:"created_at"`
	ExpiresAt     *time.Time            `json:"expires_at,omitempty"`
	Resume        entities.ResumeTarget `json:"resume"`
}

func FromRecurso(d entities.ServiceOrderDraft) RecursoResponse {
	wd := d.WizardData
	if wd == nil {
		wd = entities.WizardData{}
	}
	return RecursoResponse{
		ID:            d.ID,
		OwnerID:       d.OwnerID,
		ClientID:      d.ClientID,
		Status:        string(d.Status),
		CurrentStep:   d.CurrentStep,
		WizardData:    wd,
		Price:         d.Price.StringFixed(entities.AmountScale),
		PaymentMethod: string(d.PaymentMethod),
		PaymentRef:    d.PaymentRef,
		InvoiceURL:    d.InvoiceURL,
		QRPayload:     d.QRPayload,
		Result:        d.Result,
		CancelReason:  d.CancelReason,
		Version:       d.Version,
		LastSavedAt:   d.LastSavedAt,
		CreatedAt:     d.CreatedAt,
		ExpiresAt:     d.ExpiresAt,
		Resume:        entities.ResumeTargetFor(d),
	}
}

func FromRecursos(ds []entities.ServiceOrderDraft) []RecursoResponse {
	out := make([]RecursoResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromRecurso(d))
	}
	return out
}

// DocumentResponse carries the recurso after an upload. Advisory is set when
// extraction did not fill anything; the upload itself still succeeded.
type DocumentResponse struct {
	Recurso  RecursoResponse              `json:"recurso"`
	Advisory *entities.ExtractionAdvisory `json:"advisory,omitempty"`
}

type ExpireRecursosResponse struct {
	Expired []RecursoResponse `json:"expired"`
	Count   int               `json:"count"`
}
