package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"recursos_api/internal/domain/apperr"
	"recursos_api/pkg"

	"github.com/gin-gonic/gin"
)

// mapDomainError turns the typed domain errors into the HTTP envelope. Handler
// specific sentinels are matched by each handler's own mapper first.
func mapDomainError(err error) *pkg.AppError {
	var (
		invalidAmount *apperr.InvalidAmountError
		validation    *apperr.ValidationError
		missing       *apperr.MissingFieldsError
		notFound      *apperr.NotFoundError
		transition    *apperr.InvalidTransitionError
		state         *apperr.InvalidStateError
		conflict      *apperr.ConflictError
		insufficient  *apperr.InsufficientBalanceError
		duplicate     *apperr.DuplicatePaymentError
		external      *apperr.ExternalServiceError
	)

	switch {
	case errors.As(err, &invalidAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Invalid amount", err, http.StatusBadRequest).
			WithDetails(gin.H{"amount": invalidAmount.Amount.String(), "reason": invalidAmount.Reason})
	case errors.As(err, &validation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).
			WithDetails(gin.H{"field": validation.Field, "message": validation.Message})
	case errors.As(err, &missing):
		return pkg.NewDomainError("MISSING_FIELDS", "Required wizard fields are missing", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"draft_id": missing.DraftID, "step": missing.Step, "fields": missing.Fields})
	case errors.As(err, &notFound):
		return pkg.NewDomainError(strings.ToUpper(notFound.Resource)+"_NOT_FOUND", "Resource not found", err, http.StatusNotFound).
			WithDetails(gin.H{"resource": notFound.Resource, "id": notFound.ID})
	case errors.As(err, &transition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusConflict).
			WithDetails(gin.H{"draft_id": transition.DraftID, "from": transition.From, "to": transition.To})
	case errors.As(err, &state):
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current status", err, http.StatusConflict).
			WithDetails(gin.H{"draft_id": state.DraftID, "status": state.Status, "operation": state.Operation})
	case errors.As(err, &conflict):
		return pkg.NewDomainError("VERSION_CONFLICT", "Resource was modified concurrently", err, http.StatusConflict).
			WithDetails(gin.H{"resource": conflict.Resource, "id": conflict.ID, "expected_version": conflict.ExpectedVersion})
	case errors.As(err, &insufficient):
		return pkg.NewDomainError("INSUFFICIENT_BALANCE", "Insufficient credit balance", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{
				"owner_type": insufficient.OwnerType,
				"owner_id":   insufficient.OwnerID,
				"available":  insufficient.Available.StringFixed(2),
				"requested":  insufficient.Requested.StringFixed(2),
			})
	case errors.As(err, &duplicate):
		return pkg.NewDomainError("DUPLICATE_PAYMENT", "Payment already applied", err, http.StatusConflict).
			WithDetails(gin.H{"reference": duplicate.Reference})
	case errors.As(err, &external):
		return pkg.NewDomainError("EXTERNAL_SERVICE_ERROR", "External service unavailable", err, http.StatusBadGateway).
			WithDetails(gin.H{"service": external.Service, "retryable": true})
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "Operation timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func invalidRequest(err error) *pkg.AppError {
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	if err != nil {
		return appErr.WithDetails(gin.H{"message": err.Error()})
	}
	return appErr
}
