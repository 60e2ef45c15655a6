package interfaces

import (
	"context"
	"recursos_api/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// CreateCharge bills a PIX charge and returns its reference plus the invoice URL
// / QR payload shown to the payer. Confirmations arrive asynchronously (webhook)
// and are read back through GetCharge. Failures are *apperr.ExternalServiceError.
type IPaymentGateway interface {
	CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error)
	GetCharge(ctx context.Context, paymentRef string) (entities.Charge, error)
	CancelCharge(ctx context.Context, paymentRef string) error
}
