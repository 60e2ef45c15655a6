package handlers

import (
	"errors"
	"net/http"

	request "recursos_api/internal/adapter/http/dto/request"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/usecase"
	"recursos_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentWebhookHandler receives gateway notifications. Anything other than a
// 2xx makes Mercado Pago deliver the notification again.
type PaymentWebhookHandler struct {
	usecase usecase.IPaymentNotificationUseCase
	logger  *zap.Logger
}

func NewPaymentWebhookHandler(uc usecase.IPaymentNotificationUseCase, logger *zap.Logger) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		usecase: uc,
		logger:  observability.OrNop(logger).Named("payment.webhook"),
	}
}

// ReceivePaymentNotification godoc
// @Summary      Payment notification (Mercado Pago webhook)
// @Description  Accepts {"type":"payment","data":{"id":"..."}} or {"payment_ref":"..."}. The charge status is read back from the gateway.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        body  body  request.PaymentNotificationRequest  false  "Notification"
// @Success      200  {object}  usecase.NotificationOutcome
// @Failure      502  {object}  pkg.HTTPError
// @Router       /webhooks/payments [post]
func (h *PaymentWebhookHandler) ReceivePaymentNotification(c *gin.Context) {
	var req request.PaymentNotificationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("invalid notification body", zap.Error(err))
			appErr := invalidRequest(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	if req.Type == "" {
		req.Type = c.Query("type")
		if req.Type == "" {
			req.Type = c.Query("topic")
		}
	}

	if !req.IsPayment() {
		h.logger.Debug("notification ignored", zap.String("type", req.Type))
		c.JSON(http.StatusOK, usecase.NotificationOutcome{Action: usecase.NotificationActionIgnored})
		return
	}

	paymentRef := req.ResolvePaymentRef(c.Query("data.id"), c.Query("id"))
	if paymentRef == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Notification carries no payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.usecase.HandleNotification(c.Request.Context(), paymentRef)
	if err != nil {
		appErr := mapPaymentNotificationError(err)
		h.logger.Warn("notification not applied",
			zap.String("payment_ref", paymentRef),
			zap.String("code", appErr.Code),
			zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.logger.Info("notification handled",
		zap.String("payment_ref", out.PaymentRef),
		zap.String("status", string(out.Status)),
		zap.String("action", out.Action),
		zap.String("draft_id", out.DraftID))
	c.JSON(http.StatusOK, out)
}

// mapPaymentNotificationError keeps transient failures non-2xx so the gateway
// retries them.
func mapPaymentNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return mapDomainError(err)
	}
}
