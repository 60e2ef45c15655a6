package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"recursos_api/internal/domain/apperr"
	"recursos_api/internal/domain/entities"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/infrastructure/resilience"
	"recursos_api/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	serviceName      = "mercadopago"
	pixPaymentMethod = "pix"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentAPI is the part of the SDK payment client the gateway calls.
type paymentAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
	Cancel(ctx context.Context, id int) (*payment.Response, error)
}

// Options configures the gateway. With Mock set, charges live in memory and
// are approved on creation.
type Options struct {
	AccessToken     string
	NotificationURL string
	Mock            bool
	Resilience      resilience.Config
}

// MercadoPagoGateway bills PIX charges through Mercado Pago.
type MercadoPagoGateway struct {
	client          paymentAPI
	notificationURL string
	guard           *resilience.Guard
	logger          *zap.Logger
	metrics         *observability.Metrics

	mockMode bool
	mu       sync.Mutex
	mock     map[string]entities.Charge
	mockSeq  int64
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options, logger *zap.Logger, metrics *observability.Metrics) (*MercadoPagoGateway, error) {
	logger = observability.OrNop(logger).Named("payment.gateway")

	if opts.Mock {
		logger.Info("mock mode enabled")
		return newGateway(nil, opts, logger, metrics), nil
	}

	if opts.AccessToken == "" {
		logger.Error("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		logger.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("Mercado Pago client initialized")

	return newGateway(payment.NewClient(cfg), opts, logger, metrics), nil
}

func newGateway(client paymentAPI, opts Options, logger *zap.Logger, metrics *observability.Metrics) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		client:          client,
		notificationURL: opts.NotificationURL,
		guard:           resilience.NewGuard(serviceName, opts.Resilience),
		logger:          logger,
		metrics:         metrics,
		mockMode:        client == nil,
		mock:            make(map[string]entities.Charge),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// CreateCharge is not idempotent on the provider side, so it is never retried.
func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error) {
	if g == nil {
		return entities.Charge{}, ErrMercadoPagoGatewayNotConfigured
	}
	if g.mockMode {
		return g.mockCreate(req)
	}

	mpReq := payment.Request{
		TransactionAmount: req.Amount.InexactFloat64(),
		Description:       req.Description,
		PaymentMethodID:   pixPaymentMethod,
		ExternalReference: req.ExternalReference,
		NotificationURL:   g.notificationURL,
		DateOfExpiration:  req.ExpiresAt,
	}
	if req.PayerEmail != "" {
		mpReq.Payer = &payment.PayerRequest{Email: req.PayerEmail}
	}

	g.logger.Info("create charge start",
		zap.String("external_reference", req.ExternalReference),
		zap.String("amount", req.Amount.StringFixed(2)))

	var resp *payment.Response
	err := g.guard.Do(ctx, false, func(ctx context.Context) error {
		var callErr error
		resp, callErr = g.client.Create(ctx, mpReq)
		return g.external("create", callErr)
	})
	if err != nil {
		return entities.Charge{}, err
	}

	charge, err := toCharge(resp)
	if err != nil {
		return entities.Charge{}, err
	}
	if charge.ExpiresAt == nil {
		charge.ExpiresAt = req.ExpiresAt
	}
	g.logger.Info("create charge success",
		zap.String("payment_ref", charge.PaymentRef),
		zap.String("status", string(charge.Status)))
	return charge, nil
}

func (g *MercadoPagoGateway) GetCharge(ctx context.Context, paymentRef string) (entities.Charge, error) {
	if g == nil {
		return entities.Charge{}, ErrMercadoPagoGatewayNotConfigured
	}
	if g.mockMode {
		return g.mockGet(paymentRef)
	}

	id, err := providerID(paymentRef)
	if err != nil {
		return entities.Charge{}, err
	}

	var resp *payment.Response
	err = g.guard.Do(ctx, true, func(ctx context.Context) error {
		var callErr error
		resp, callErr = g.client.Get(ctx, id)
		return g.external("get", callErr)
	})
	if err != nil {
		return entities.Charge{}, err
	}
	return toCharge(resp)
}

func (g *MercadoPagoGateway) CancelCharge(ctx context.Context, paymentRef string) error {
	if g == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}
	if g.mockMode {
		return g.mockCancel(paymentRef)
	}

	id, err := providerID(paymentRef)
	if err != nil {
		return err
	}

	err = g.guard.Do(ctx, true, func(ctx context.Context) error {
		_, callErr := g.client.Cancel(ctx, id)
		return g.external("cancel", callErr)
	})
	if err != nil {
		return err
	}
	g.logger.Info("charge cancelled", zap.String("payment_ref", paymentRef))
	return nil
}

// external wraps an SDK failure so callers (and the retry loop) see it as a
// transient external error.
func (g *MercadoPagoGateway) external(op string, err error) error {
	if err == nil {
		return nil
	}
	g.metrics.IncExternalError(serviceName)
	g.logger.Warn("sdk call failed", zap.String("operation", op), zap.Error(err))
	return &apperr.ExternalServiceError{Service: serviceName, Err: fmt.Errorf("%s: %w", op, err)}
}

func providerID(paymentRef string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(paymentRef))
	if err != nil {
		return 0, &apperr.ValidationError{Field: "payment_ref", Message: "must be a Mercado Pago payment id"}
	}
	return id, nil
}

func toCharge(resp *payment.Response) (entities.Charge, error) {
	if resp == nil {
		return entities.Charge{}, &apperr.ExternalServiceError{Service: serviceName, Err: errors.New("empty response")}
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.Charge{}, err
	}

	td := resp.PointOfInteraction.TransactionData
	return entities.Charge{
		PaymentRef:        strconv.Itoa(resp.ID),
		Status:            entities.PaymentStatusFromProvider(resp.Status),
		Amount:            decimal.NewFromFloat(resp.TransactionAmount).Round(entities.AmountScale),
		ExternalReference: resp.ExternalReference,
		InvoiceURL:        td.TicketURL,
		QRPayload:         td.QRCode,
		Raw:               raw,
	}, nil
}

func (g *MercadoPagoGateway) mockCreate(req entities.ChargeRequest) (entities.Charge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.mockSeq++
	id := strconv.FormatInt(g.now().UnixNano()+g.mockSeq, 10)

	charge := entities.Charge{
		PaymentRef:        id,
		Status:            entities.PaymentStatusAprovado,
		Amount:            req.Amount,
		ExternalReference: req.ExternalReference,
		InvoiceURL:        "https://mock.mercadopago.local/pix/" + id,
		QRPayload:         "00020126mock" + id,
		ExpiresAt:         req.ExpiresAt,
	}
	charge.Raw, _ = json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"external_reference": req.ExternalReference,
		"date_created":       g.now().Format(time.RFC3339Nano),
	})
	g.mock[id] = charge

	g.logger.Info("mock create success", zap.String("payment_ref", id), zap.String("external_reference", req.ExternalReference))
	return charge, nil
}

func (g *MercadoPagoGateway) mockGet(paymentRef string) (entities.Charge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	charge, ok := g.mock[paymentRef]
	if !ok {
		return entities.Charge{}, &apperr.NotFoundError{Resource: "payment", ID: paymentRef}
	}
	return charge, nil
}

func (g *MercadoPagoGateway) mockCancel(paymentRef string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	charge, ok := g.mock[paymentRef]
	if !ok {
		return &apperr.NotFoundError{Resource: "payment", ID: paymentRef}
	}
	charge.Status = entities.PaymentStatusCancelado
	g.mock[paymentRef] = charge
	return nil
}
