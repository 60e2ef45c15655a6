package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/resilience"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

type fakePaymentAPI struct {
	create func(payment.Request) (*payment.Response, error)
	get    func(int) (*payment.Response, error)
	cancel func(int) (*payment.Response, error)

	creates, gets, cancels int
}

func (f *fakePaymentAPI) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.creates++
	return f.create(req)
}

func (f *fakePaymentAPI) Get(_ context.Context, id int) (*payment.Response, error) {
	f.gets++
	return f.get(id)
}

func (f *fakePaymentAPI) Cancel(_ context.Context, id int) (*payment.Response, error) {
	f.cancels++
	return f.cancel(id)
}

func testGateway(api paymentAPI) *MercadoPagoGateway {
	return newGateway(api, Options{
		NotificationURL: "https://api.example.com/v1/webhooks/payments",
		Resilience:      resilience.Config{MaxRetries: 2, InitialBackoff: time.Millisecond},
	}, nil, nil)
}

func pixResponse(id int, status string) *payment.Response {
	resp := &payment.Response{
		ID:                id,
		Status:            status,
		ExternalReference: "recurso:d1",
		TransactionAmount: 49.9,
	}
	resp.PointOfInteraction.TransactionData.QRCode = "00020126qr"
	resp.PointOfInteraction.TransactionData.TicketURL = "https://mp/ticket/1"
	return resp
}

func TestMercadoPagoGateway_CreateCharge(t *testing.T) {
	exp := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)
	var sent payment.Request
	api := &fakePaymentAPI{create: func(req payment.Request) (*payment.Response, error) {
		sent = req
		return pixResponse(123, "pending"), nil
	}}

	charge, err := testGateway(api).CreateCharge(context.Background(), entities.ChargeRequest{
		Amount:            decimal.RequireFromString("49.90"),
		ExternalReference: "recurso:d1",
		Description:       "Recurso de multa",
		PayerEmail:        "ana@example.com",
		ExpiresAt:         &exp,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sent.PaymentMethodID != "pix" || sent.ExternalReference != "recurso:d1" || sent.TransactionAmount != 49.9 ||
		sent.NotificationURL == "" || sent.Payer == nil || sent.Payer.Email != "ana@example.com" || sent.DateOfExpiration == nil {
		t.Fatalf("unexpected request: %+v", sent)
	}
	if charge.PaymentRef != "123" || charge.Status != entities.PaymentStatusPendente || charge.QRPayload != "00020126qr" ||
		charge.InvoiceURL != "https://mp/ticket/1" || !charge.Amount.Equal(decimal.RequireFromString("49.90")) ||
		charge.ExpiresAt == nil || len(charge.Raw) == 0 {
		t.Fatalf("unexpected charge: %+v", charge)
	}
}

func TestMercadoPagoGateway_CreateChargeIsNotRetried(t *testing.T) {
	api := &fakePaymentAPI{create: func(payment.Request) (*payment.Response, error) {
		return nil, errors.New("timeout")
	}}

	_, err := testGateway(api).CreateCharge(context.Background(), entities.ChargeRequest{Amount: decimal.NewFromInt(10)})
	var ext *apperr.ExternalServiceError
	if !errors.As(err, &ext) || ext.Service != "mercadopago" {
		t.Fatalf("expected ExternalServiceError, got %v", err)
	}
	if api.creates != 1 {
		t.Fatalf("create must run once, ran %d times", api.creates)
	}
}

func TestMercadoPagoGateway_GetChargeRetries(t *testing.T) {
	api := &fakePaymentAPI{}
	api.get = func(id int) (*payment.Response, error) {
		if id != 123 {
			t.Fatalf("unexpected id %d", id)
		}
		if api.gets < 3 {
			return nil, errors.New("502")
		}
		return pixResponse(123, "approved"), nil
	}

	charge, err := testGateway(api).GetCharge(context.Background(), "123")
	if err != nil || charge.Status != entities.PaymentStatusAprovado || api.gets != 3 {
		t.Fatalf("expected approved after retries: %+v %v gets=%d", charge, err, api.gets)
	}
}

func TestMercadoPagoGateway_InvalidRef(t *testing.T) {
	api := &fakePaymentAPI{}
	g := testGateway(api)

	_, err := g.GetCharge(context.Background(), "credits:abc")
	if apperr.ClassOf(err) != apperr.ClassValidation || api.gets != 0 {
		t.Fatalf("expected validation error without a call, got %v", err)
	}
	if err := g.CancelCharge(context.Background(), "x"); apperr.ClassOf(err) != apperr.ClassValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMercadoPagoGateway_CancelCharge(t *testing.T) {
	api := &fakePaymentAPI{cancel: func(id int) (*payment.Response, error) {
		return pixResponse(id, "cancelled"), nil
	}}
	if err := testGateway(api).CancelCharge(context.Background(), "123"); err != nil || api.cancels != 1 {
		t.Fatalf("unexpected: %v cancels=%d", err, api.cancels)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{Mock: true}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	a, _ := g.CreateCharge(ctx, entities.ChargeRequest{Amount: decimal.NewFromInt(50), ExternalReference: "credits:company:C1"})
	b, _ := g.CreateCharge(ctx, entities.ChargeRequest{Amount: decimal.NewFromInt(50), ExternalReference: "credits:company:C1"})
	if a.PaymentRef == "" || a.PaymentRef == b.PaymentRef || a.Status != entities.PaymentStatusAprovado {
		t.Fatalf("unexpected mock charges: %+v %+v", a, b)
	}

	got, err := g.GetCharge(ctx, a.PaymentRef)
	if err != nil || got.ExternalReference != "credits:company:C1" {
		t.Fatalf("get: %+v %v", got, err)
	}

	if err := g.CancelCharge(ctx, a.PaymentRef); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	got, _ = g.GetCharge(ctx, a.PaymentRef)
	if got.Status != entities.PaymentStatusCancelado {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}

	if _, err := g.GetCharge(ctx, "404"); apperr.ClassOf(err) != apperr.ClassState {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(Options{}, nil, nil); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}
