package handlers

import (
	"errors"
	"net/http"

	request "recursos_api/internal/adapter/http/dto/request"
	response "recursos_api/internal/adapter/http/dto/response"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/usecase"
	"recursos_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreditLedgerHandler handles HTTP requests for prepaid credit accounts.
type CreditLedgerHandler struct {
	usecase             usecase.ICreditLedgerUseCase
	lowBalanceThreshold decimal.Decimal
	logger              *zap.Logger
}

func NewCreditLedgerHandler(uc usecase.ICreditLedgerUseCase, lowBalanceThreshold decimal.Decimal, logger *zap.Logger) *CreditLedgerHandler {
	return &CreditLedgerHandler{
		usecase:             uc,
		lowBalanceThreshold: lowBalanceThreshold,
		logger:              observability.OrNop(logger).Named("credits.handler"),
	}
}

// GetBalance godoc
// @Summary      Credit balance
// @Tags         credits
// @Produce      json
// @Param        owner_type  path  string  true  "company or client"
// @Param        owner_id    path  string  true  "Owner ID"
// @Success      200  {object}  response.CreditAccountResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /credits/{owner_type}/{owner_id} [get]
func (h *CreditLedgerHandler) GetBalance(c *gin.Context) {
	ownerType, ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	acct, err := h.usecase.GetBalance(c.Request.Context(), ownerType, ownerID)
	if err != nil {
		h.fail(c, "get balance", ownerType, ownerID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCreditAccount(acct, h.lowBalanceThreshold))
}

// GetStatement godoc
// @Summary      Credit statement, ascending by sequence
// @Tags         credits
// @Produce      json
// @Param        owner_type  path   string  true   "company or client"
// @Param        owner_id    path   string  true   "Owner ID"
// @Param        type        query  string  false  "credit or debit"
// @Param        from        query  string  false  "RFC3339 lower bound"
// @Param        to          query  string  false  "RFC3339 upper bound"
// @Param        after       query  int     false  "cursor (last sequence seen)"
// @Param        limit       query  int     false  "page size"
// @Success      200  {object}  response.StatementResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /credits/{owner_type}/{owner_id}/transactions [get]
func (h *CreditLedgerHandler) GetStatement(c *gin.Context) {
	ownerType, ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	var q request.StatementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page, err := h.usecase.GetStatement(c.Request.Context(), ownerType, ownerID, filter)
	if err != nil {
		h.fail(c, "get statement", ownerType, ownerID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatementPage(page))
}

// Purchase godoc
// @Summary      Credit a confirmed external payment
// @Description  payment_ref is the idempotency key; a replay answers 409 DUPLICATE_PAYMENT.
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        owner_type  path  string                          true  "company or client"
// @Param        owner_id    path  string                          true  "Owner ID"
// @Param        body        body  request.PurchaseCreditsRequest  true  "Purchase"
// @Success      201  {object}  response.CreditAccountResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /credits/{owner_type}/{owner_id}/purchases [post]
func (h *CreditLedgerHandler) Purchase(c *gin.Context) {
	ownerType, ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	var req request.PurchaseCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	acct, err := h.usecase.Purchase(c.Request.Context(), ownerType, ownerID, req.Amount, req.PaymentRef)
	if err != nil {
		h.fail(c, "purchase", ownerType, ownerID, err)
		return
	}
	h.logger.Info("credits purchased",
		zap.String("owner_type", string(ownerType)),
		zap.String("owner_id", ownerID),
		zap.String("payment_ref", req.PaymentRef))
	c.JSON(http.StatusCreated, response.FromCreditAccount(acct, h.lowBalanceThreshold))
}

// Consume godoc
// @Summary      Debit credits, all-or-nothing
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        owner_type  path  string                         true  "company or client"
// @Param        owner_id    path  string                         true  "Owner ID"
// @Param        body        body  request.ConsumeCreditsRequest  true  "Consumption"
// @Success      201  {object}  response.ConsumeCreditsResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /credits/{owner_type}/{owner_id}/consumptions [post]
func (h *CreditLedgerHandler) Consume(c *gin.Context) {
	ownerType, ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	var req request.ConsumeCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	acct, tx, err := h.usecase.Consume(c.Request.Context(), ownerType, ownerID, req.Amount, req.Reason)
	if err != nil {
		h.fail(c, "consume", ownerType, ownerID, err)
		return
	}
	c.JSON(http.StatusCreated, response.ConsumeCreditsResponse{
		Account:     response.FromCreditAccount(acct, h.lowBalanceThreshold),
		Transaction: response.FromCreditTransaction(tx),
	})
}

// Refund godoc
// @Summary      Explicit compensating credit
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        owner_type  path  string                        true  "company or client"
// @Param        owner_id    path  string                        true  "Owner ID"
// @Param        body        body  request.RefundCreditsRequest  true  "Refund"
// @Success      201  {object}  response.CreditAccountResponse
// @Router       /credits/{owner_type}/{owner_id}/refunds [post]
func (h *CreditLedgerHandler) Refund(c *gin.Context) {
	ownerType, ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	var req request.RefundCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	acct, err := h.usecase.Refund(c.Request.Context(), ownerType, ownerID, req.Amount, req.Reason, req.Reference)
	if err != nil {
		h.fail(c, "refund", ownerType, ownerID, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCreditAccount(acct, h.lowBalanceThreshold))
}

// RequestTopUp godoc
// @Summary      Open a PIX charge that credits the account once paid
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        owner_type  path  string                       true  "company or client"
// @Param        owner_id    path  string                       true  "Owner ID"
// @Param        body        body  request.TopUpCreditsRequest  true  "Top-up"
// @Success      201  {object}  response.ChargeResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /credits/{owner_type}/{owner_id}/top-ups [post]
func (h *CreditLedgerHandler) RequestTopUp(c *gin.Context) {
	ownerType, ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	var req request.TopUpCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	charge, err := h.usecase.RequestTopUp(c.Request.Context(), ownerType, ownerID, req.Amount)
	if err != nil {
		h.fail(c, "top-up", ownerType, ownerID, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCharge(charge))
}

func (h *CreditLedgerHandler) owner(c *gin.Context) (entities.OwnerType, string, bool) {
	ownerType, err := request.ParseOwnerType(c.Param("owner_type"))
	if err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return "", "", false
	}
	return ownerType, c.Param("owner_id"), true
}

func (h *CreditLedgerHandler) fail(c *gin.Context, op string, ownerType entities.OwnerType, ownerID string, err error) {
	appErr := mapCreditLedgerError(err)
	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("owner_type", string(ownerType)),
		zap.String("owner_id", ownerID),
		zap.String("code", appErr.Code),
		zap.Error(err),
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("credits request failed", fields...)
	} else {
		h.logger.Info("credits request rejected", fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCreditLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCreditLedgerNotConfigured):
		return pkg.NewDomainError("CREDIT_LEDGER_NOT_CONFIGURED", "Credit ledger not configured", err, http.StatusServiceUnavailable)
	default:
		return mapDomainError(err)
	}
}
