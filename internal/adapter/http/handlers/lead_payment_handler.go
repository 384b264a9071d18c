package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "quote_service/internal/adapter/http/dto/response"
	"quote_service/internal/usecase"
	"quote_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadPaymentHandler handles vendors buying quote request leads.
type LeadPaymentHandler struct {
	usecase  usecase.ILeadPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

func NewLeadPaymentHandler(uc usecase.ILeadPaymentUseCase, mockMode bool, log *zap.Logger) *LeadPaymentHandler {
	return &LeadPaymentHandler{usecase: uc, mockMode: mockMode, log: log.Named("lead.handler")}
}

// Purchase godoc
// @Summary      Buy a quote request lead
// @Description  Charges the lead fee for the request's volume bucket through the payment provider
// @Tags         lead-payments
// @Accept       json
// @Produce      json
// @Param        Authorization  header  string                            true  "Bearer token"
// @Param        X-User-ID      header  string                            true  "Vendor id"
// @Param        X-User-Role    header  string                            true  "vendor"
// @Param        id             path    string                            true  "Quote request id"
// @Param        body           body    request.LeadPaymentCreateRequest  false  "Provider payload"
// @Success      201  {object}  response.LeadPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/lead-payments [post]
func (h *LeadPaymentHandler) Purchase(c *gin.Context) {
	quoteRequestID := c.Param("id")
	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Info("invalid payload", zap.String("quote_request_id", quoteRequestID), zap.Error(err))
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.Purchase(c.Request.Context(), sessionFromRequest(c), quoteRequestID, payload)
	if err != nil {
		appErr := mapLeadPaymentError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("lead purchase failed", zap.String("quote_request_id", quoteRequestID), zap.Error(err))
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, response.FromLeadPayment(created))
}

// GetLatest godoc
// @Summary      Latest lead payment for a quote request
// @Tags         lead-payments
// @Produce      json
// @Param        id  path  string  true  "Quote request id"
// @Success      200  {object}  response.LeadPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/lead-payments [get]
func (h *LeadPaymentHandler) GetLatest(c *gin.Context) {
	p, err := h.usecase.LatestForQuoteRequest(c.Request.Context(), sessionFromRequest(c), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeadPayment(p))
}

// GetByID godoc
// @Summary      Get a lead payment
// @Tags         lead-payments
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Param        X-User-ID      header  string  true  "Vendor or admin id"
// @Param        X-User-Role    header  string  true  "vendor or admin"
// @Param        id             path    string  true  "Payment id"
// @Success      200  {object}  response.LeadPaymentResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /lead-payments/{id} [get]
func (h *LeadPaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), sessionFromRequest(c), c.Param("id"))
	if err != nil {
		writeError(c, mapLeadPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeadPayment(p))
}

// readProviderPayload accepts either {"provider_payload": {...}} or the provider
// payload itself. An empty body is an empty object.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			w := strings.TrimSpace(string(wrapped))
			if w == "" || w == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapLeadPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSession):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidQuoteRequestID), errors.Is(err, usecase.ErrInvalidLeadPaymentID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this payment provider account", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadNotAvailable):
		return pkg.NewDomainErrorSimple("LEAD_NOT_AVAILABLE", "Quote request is not open for leads", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeadPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
