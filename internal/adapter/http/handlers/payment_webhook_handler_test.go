package handlers

import (
	"net/http"
	"testing"

	"recursos_api/internal/adapter/http/handlers/mocks"
	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentNotificationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentNotificationUseCase(ctrl)
	h := NewPaymentWebhookHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/webhooks/payments", h.ReceivePaymentNotification)
	return r, uc
}

func TestPaymentWebhookHandler_ReceivePaymentNotification(t *testing.T) {
	t.Run("mercado pago body", func(t *testing.T) {
		r, uc := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "123").Return(usecase.NotificationOutcome{
			PaymentRef:        "123",
			Status:            entities.PaymentStatusAprovado,
			ExternalReference: "recurso:d1",
			Action:            usecase.NotificationActionConfirmed,
			DraftID:           "d1",
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/webhooks/payments", `{"type":"payment","action":"payment.updated","data":{"id":"123"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["action"] != "confirmed" || body["draft_id"] != "d1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("plain payment_ref", func(t *testing.T) {
		r, uc := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "456").Return(usecase.NotificationOutcome{PaymentRef: "456", Action: usecase.NotificationActionAlreadyApplied}, nil)

		w := doJSON(r, http.MethodPost, "/v1/webhooks/payments", `{"payment_ref":"456"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("query string ipn", func(t *testing.T) {
		r, uc := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "789").Return(usecase.NotificationOutcome{PaymentRef: "789", Action: usecase.NotificationActionPending}, nil)

		w := doJSON(r, http.MethodPost, "/v1/webhooks/payments?topic=payment&id=789", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("other topics are acknowledged", func(t *testing.T) {
		r, _ := newWebhookRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/webhooks/payments", `{"type":"merchant_order","data":{"id":"1"}}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["action"] != "ignored" {
			t.Fatalf("unexpected %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("no payment id", func(t *testing.T) {
		r, _ := newWebhookRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/webhooks/payments", `{"type":"payment"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure is retried by the provider", func(t *testing.T) {
		r, uc := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), "123").Return(usecase.NotificationOutcome{}, &apperr.ExternalServiceError{Service: "mercadopago"})

		w := doJSON(r, http.MethodPost, "/v1/webhooks/payments", `{"data":{"id":123}}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newWebhookRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/webhooks/payments", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
