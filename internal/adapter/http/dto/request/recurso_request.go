package request

import (
	"errors"
	"strconv"
	"strings"

	"recursos_api/internal/domain/entities"
)

var (
	ErrInvalidStep          = errors.New("step must be between 1 and 3")
	ErrInvalidPaymentMethod = errors.New("method must be pix or credits")
	ErrInvalidStatus        = errors.New("unknown status")
)

type CreateRecursoRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
}

// SaveStepRequest is an autosave of one wizard step. ExpectedVersion 0 means
// last-writer-wins on the merged fields.
type SaveStepRequest struct {
	Data            map[string]any `json:"data"`
	ExpectedVersion int64          `json:"expected_version"`
}

type SaveIntakeRequest struct {
	Data            map[string]any `json:"data" binding:"required"`
	ExpectedVersion int64          `json:"expected_version"`
}

// RequestPaymentRequest picks how a recurso is paid. OwnerType is only read for
// credits and defaults to company (the draft owner's account); client draws from
// the account of the draft's client_id.
type RequestPaymentRequest struct {
	Method    string `json:"method"`
	OwnerType string `json:"owner_type"`
}

func (r RequestPaymentRequest) Resolve() (entities.PaymentMethod, entities.OwnerType, error) {
	method, ok := entities.ParsePaymentMethod(r.Method)
	if !ok {
		return "", "", ErrInvalidPaymentMethod
	}
	if method != entities.PaymentMethodCredits {
		return method, "", nil
	}
	if strings.TrimSpace(r.OwnerType) == "" {
		return method, entities.OwnerTypeCompany, nil
	}
	ownerType, err := ParseOwnerType(r.OwnerType)
	if err != nil {
		return "", "", err
	}
	return method, ownerType, nil
}

type CompleteRecursoRequest struct {
	Result map[string]any `json:"result" binding:"required"`
}

type CancelRecursoRequest struct {
	Reason string `json:"reason"`
}

// ListRecursosQuery is bound from the query string of GET /recursos.
type ListRecursosQuery struct {
	OwnerID string `form:"owner_id"`
	Status  string `form:"status"`
}

func (q ListRecursosQuery) ToFilter() (entities.DraftFilter, error) {
	f := entities.DraftFilter{OwnerID: strings.TrimSpace(q.OwnerID)}
	if strings.TrimSpace(q.Status) != "" {
		st, ok := entities.ParseDraftStatus(q.Status)
		if !ok {
			return entities.DraftFilter{}, ErrInvalidStatus
		}
		f.Status = st
	}
	return f, nil
}

// ParseStep reads a wizard step from a path or form value.
func ParseStep(s string) (int, error) {
	step, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || step < entities.FirstWizardStep || step > entities.LastWizardStep {
		return 0, ErrInvalidStep
	}
	return step, nil
}
