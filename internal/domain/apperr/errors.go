// Package apperr holds the typed errors shared by the ledger and the recurso
// lifecycle. Every error carries the context a caller needs to act on it
// (owner, amounts, states) and belongs to exactly one Class.
package apperr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Class groups errors by how a caller is expected to react.
type Class string

const (
	ClassValidation Class = "validation"
	ClassState      Class = "state"
	ClassConflict   Class = "conflict"
	ClassTransient  Class = "transient"
	ClassUnknown    Class = "unknown"
)

// ErrVersionConflict is returned by stores when a compare-and-set lost the race.
var ErrVersionConflict = errors.New("version conflict")

type InvalidAmountError struct {
	Amount decimal.Decimal
	Reason string
}

func (e *InvalidAmountError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid amount %s: %s", e.Amount.String(), e.Reason)
	}
	return fmt.Sprintf("invalid amount %s", e.Amount.String())
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// MissingFieldsError reports wizard fields required before a charge can be requested.
type MissingFieldsError struct {
	DraftID string
	Step    int
	Fields  []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("draft %s: step %d is missing required fields %v", e.DraftID, e.Step, e.Fields)
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

type InvalidTransitionError struct {
	DraftID string
	From    string
	To      string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for draft %s: %s -> %s", e.DraftID, e.From, e.To)
}

type InvalidStateError struct {
	DraftID   string
	Status    string
	Operation string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("draft %s: operation %s not allowed in status %s", e.DraftID, e.Operation, e.Status)
}

// ConflictError is a stale write detected by optimistic concurrency.
type ConflictError struct {
	Resource        string
	ID              string
	ExpectedVersion int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently (expected version %d)", e.Resource, e.ID, e.ExpectedVersion)
}

func (e *ConflictError) Unwrap() error { return ErrVersionConflict }

type InsufficientBalanceError struct {
	OwnerType string
	OwnerID   string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for %s %s: available=%s requested=%s",
		e.OwnerType, e.OwnerID, e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

type DuplicatePaymentError struct {
	Reference string
}

func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf("payment already applied: %s", e.Reference)
}

// ExternalServiceError wraps a failure of the payment gateway or the extraction
// service. These are the only errors that are safe to retry.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// ClassOf reports the class of err, looking through wrapped errors.
func ClassOf(err error) Class {
	var (
		invalidAmount *InvalidAmountError
		validation    *ValidationError
		missing       *MissingFieldsError
		notFound      *NotFoundError
		transition    *InvalidTransitionError
		state         *InvalidStateError
		conflict      *ConflictError
		insufficient  *InsufficientBalanceError
		duplicate     *DuplicatePaymentError
		external      *ExternalServiceError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &invalidAmount), errors.As(err, &validation), errors.As(err, &missing):
		return ClassValidation
	case errors.As(err, &notFound), errors.As(err, &transition), errors.As(err, &state), errors.As(err, &conflict):
		return ClassState
	case errors.As(err, &insufficient), errors.As(err, &duplicate):
		return ClassConflict
	case errors.As(err, &external):
		return ClassTransient
	default:
		return ClassUnknown
	}
}

// IsRetryable reports whether err may be retried with backoff.
func IsRetryable(err error) bool {
	return ClassOf(err) == ClassTransient
}
