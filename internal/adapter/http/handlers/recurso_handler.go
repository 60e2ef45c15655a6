package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	request "recursos_api/internal/adapter/http/dto/request"
	response "recursos_api/internal/adapter/http/dto/response"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/usecase"
	"recursos_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxDocumentSize = 10 << 20

var ErrDocumentTooLarge = fmt.Errorf("file exceeds %d bytes", maxDocumentSize)

// RecursoHandler handles HTTP requests for recursos: the wizard autosave and
// the lifecycle that follows it.
type RecursoHandler struct {
	drafts    usecase.IServiceOrderDraftUseCase
	lifecycle usecase.IRecursoLifecycleUseCase
	logger    *zap.Logger
	now       func() time.Time
}

func NewRecursoHandler(drafts usecase.IServiceOrderDraftUseCase, lifecycle usecase.IRecursoLifecycleUseCase, logger *zap.Logger) *RecursoHandler {
	return &RecursoHandler{
		drafts:    drafts,
		lifecycle: lifecycle,
		logger:    observability.OrNop(logger).Named("recurso.handler"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateRecurso godoc
// @Summary      Start a recurso in rascunho
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateRecursoRequest  true  "Owner"
// @Success      201  {object}  response.RecursoResponse
// @Router       /recursos [post]
func (h *RecursoHandler) CreateRecurso(c *gin.Context) {
	var req request.CreateRecursoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.drafts.Create(c.Request.Context(), req.OwnerID)
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRecurso(d))
}

// ListRecursos godoc
// @Summary      List recursos, oldest first
// @Tags         recursos
// @Produce      json
// @Param        owner_id  query  string  false  "Owner ID"
// @Param        status    query  string  false  "Status"
// @Success      200  {array}  response.RecursoResponse
// @Router       /recursos [get]
func (h *RecursoHandler) ListRecursos(c *gin.Context) {
	var q request.ListRecursosQuery
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

	ds, err := h.drafts.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecursos(ds))
}

// GetRecurso godoc
// @Summary      Get a recurso
// @Tags         recursos
// @Produce      json
// @Param        id  path  string  true  "Recurso ID"
// @Success      200  {object}  response.RecursoResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /recursos/{id} [get]
func (h *RecursoHandler) GetRecurso(c *gin.Context) {
	id := c.Param("id")
	d, err := h.drafts.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecurso(d))
}

// SaveStep godoc
// @Summary      Autosave a wizard step
// @Description  Fields are merged into the step; nothing already saved is removed.
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Recurso ID"
// @Param        step  path  int                      true  "Wizard step (1-3)"
// @Param        body  body  request.SaveStepRequest  true  "Step data"
// @Success      200  {object}  response.RecursoResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /recursos/{id}/steps/{step} [put]
func (h *RecursoHandler) SaveStep(c *gin.Context) {
	id := c.Param("id")
	step, err := request.ParseStep(c.Param("step"))
	if err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var req request.SaveStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.drafts.Save(c.Request.Context(), id, step, req.Data, req.ExpectedVersion)
	if err != nil {
		h.fail(c, "save step", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecurso(d))
}

// DeleteRecurso godoc
// @Summary      Delete a recurso in rascunho or cancelado
// @Tags         recursos
// @Param        id  path  string  true  "Recurso ID"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /recursos/{id} [delete]
func (h *RecursoHandler) DeleteRecurso(c *gin.Context) {
	id := c.Param("id")
	if err := h.drafts.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestPayment godoc
// @Summary      Request payment (pix charge or credits debit)
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true   "Recurso ID"
// @Param        body  body  request.RequestPaymentRequest  false  "Method"
// @Success      200  {object}  response.RecursoResponse
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /recursos/{id}/payment [post]
func (h *RecursoHandler) RequestPayment(c *gin.Context) {
	id := c.Param("id")

	var req request.RequestPaymentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := invalidRequest(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	method, ownerType, err := req.Resolve()
	if err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.lifecycle.RequestPayment(c.Request.Context(), id, method, ownerType)
	if err != nil {
		h.fail(c, "request payment", id, err)
		return
	}
	h.logger.Info("payment requested",
		zap.String("draft_id", d.ID),
		zap.String("method", string(method)),
		zap.String("status", string(d.Status)))
	c.JSON(http.StatusOK, response.FromRecurso(d))
}

// SyncPayment godoc
// @Summary      Re-read the charge from the gateway and apply its status
// @Tags         recursos
// @Produce      json
// @Param        id  path  string  true  "Recurso ID"
// @Success      200  {object}  response.RecursoResponse
// @Router       /recursos/{id}/payment/sync [post]
func (h *RecursoHandler) SyncPayment(c *gin.Context) {
	id := c.Param("id")
	d, err := h.lifecycle.SyncPayment(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "sync payment", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecurso(d))
}

// ResumeRecurso godoc
// @Summary      Where to continue a recurso
// @Tags         recursos
// @Produce      json
// @Param        id  path  string  true  "Recurso ID"
// @Success      200  {object}  entities.ResumeTarget
// @Router       /recursos/{id}/resume [get]
func (h *RecursoHandler) ResumeRecurso(c *gin.Context) {
	id := c.Param("id")
	target, err := h.lifecycle.ResumeTarget(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "resume", id, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

// SaveIntake godoc
// @Summary      Autosave intake data after payment
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Recurso ID"
// @Param        body  body  request.SaveIntakeRequest  true  "Intake data"
// @Success      200  {object}  response.RecursoResponse
// @Router       /recursos/{id}/intake [patch]
func (h *RecursoHandler) SaveIntake(c *gin.Context) {
	id := c.Param("id")

	var req request.SaveIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.lifecycle.SaveIntake(c.Request.Context(), id, req.Data, req.ExpectedVersion)
	if err != nil {
		h.fail(c, "save intake", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecurso(d))
}

// AttachDocument godoc
// @Summary      Upload a document and merge the extracted fields
// @Description  Extraction failures come back as an advisory with status 200.
// @Tags         recursos
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true   "Recurso ID"
// @Param        file  formData  file    true   "Document"
// @Param        step  formData  int     false  "Wizard step (rascunho only)"
// @Success      200  {object}  response.DocumentResponse
// @Router       /recursos/{id}/documents [post]
func (h *RecursoHandler) AttachDocument(c *gin.Context) {
	id := c.Param("id")

	step := 0
	if raw := strings.TrimSpace(c.PostForm("step")); raw != "" {
		s, err := request.ParseStep(raw)
		if err != nil {
			appErr := invalidRequest(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		step = s
	}

	doc, err := readDocument(c)
	if err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, advisory, err := h.lifecycle.AttachDocument(c.Request.Context(), id, step, doc)
	if err != nil {
		h.fail(c, "attach document", id, err)
		return
	}
	c.JSON(http.StatusOK, response.DocumentResponse{Recurso: response.FromRecurso(d), Advisory: advisory})
}

// StartAnalysis godoc
// @Summary      Submit a filled recurso for analysis
// @Tags         recursos
// @Produce      json
// @Param        id  path  string  true  "Recurso ID"
// @Success      200  {object}  response.RecursoResponse
// @Router       /recursos/{id}/analysis [post]
func (h *RecursoHandler) StartAnalysis(c *gin.Context) {
	id := c.Param("id")
	d, err := h.lifecycle.StartAnalysis(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "start analysis", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecurso(d))
}

// CompleteRecurso godoc
// @Summary      Record the analysis result
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "Recurso ID"
// @Param        body  body  request.CompleteRecursoRequest  true  "Result"
// @Success      200  {object}  response.RecursoResponse
// @Router       /recursos/{id}/complete [post]
func (h *RecursoHandler) CompleteRecurso(c *gin.Context) {
	id := c.Param("id")

	var req request.CompleteRecursoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.lifecycle.Complete(c.Request.Context(), id, req.Result)
	if err != nil {
		h.fail(c, "complete", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecurso(d))
}

// CancelRecurso godoc
// @Summary      Cancel a recurso
// @Description  Never refunds a completed debit; refunds are explicit.
// @Tags         recursos
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true   "Recurso ID"
// @Param        body  body  request.CancelRecursoRequest  false  "Reason"
// @Success      200  {object}  response.RecursoResponse
// @Router       /recursos/{id}/cancel [post]
func (h *RecursoHandler) CancelRecurso(c *gin.Context) {
	id := c.Param("id")

	var req request.CancelRecursoRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := invalidRequest(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	d, err := h.lifecycle.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.fail(c, "cancel", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecurso(d))
}

// ExpireOverdue godoc
// @Summary      Expire recursos whose payment window has elapsed
// @Tags         recursos
// @Produce      json
// @Success      200  {object}  response.ExpireRecursosResponse
// @Router       /recursos/expire [post]
func (h *RecursoHandler) ExpireOverdue(c *gin.Context) {
	expired, err := h.lifecycle.ExpireOverdue(c.Request.Context(), h.now())
	if err != nil {
		h.fail(c, "expire overdue", "", err)
		return
	}
	c.JSON(http.StatusOK, response.ExpireRecursosResponse{Expired: response.FromRecursos(expired), Count: len(expired)})
}

func readDocument(c *gin.Context) (entities.Document, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return entities.Document{}, err
	}
	if fh.Size > maxDocumentSize {
		return entities.Document{}, ErrDocumentTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return entities.Document{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxDocumentSize+1))
	if err != nil {
		return entities.Document{}, err
	}
	if len(content) > maxDocumentSize {
		return entities.Document{}, ErrDocumentTooLarge
	}
	return entities.Document{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func (h *RecursoHandler) fail(c *gin.Context, op, id string, err error) {
	appErr := mapRecursoError(err)
	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("draft_id", id),
		zap.String("code", appErr.Code),
		zap.Error(err),
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("recurso request failed", fields...)
	} else {
		h.logger.Info("recurso request rejected", fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapRecursoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCreditLedgerNotConfigured):
		return pkg.NewDomainError("CREDIT_LEDGER_NOT_CONFIGURED", "Credit ledger not configured", err, http.StatusServiceUnavailable)
	default:
		return mapDomainError(err)
	}
}
