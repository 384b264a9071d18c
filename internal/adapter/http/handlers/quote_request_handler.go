package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "quote_service/internal/adapter/http/dto/request"
	response "quote_service/internal/adapter/http/dto/response"
	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase"
	"quote_service/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteRequestHandler handles submission and lifecycle of quote requests.
type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit a quote request
// @Description  Validates all six form steps, finalises the payload and stores it as a pending request
// @Tags         quote-requests
// @Accept       json
// @Produce      json
// @Param        Authorization  header  string                    true  "Bearer token"
// @Param        X-User-ID      header  string                    true  "Caller id"
// @Param        form           body    request.QuoteFormRequest  true  "Quote request form"
// @Success      201  {object}  response.QuoteRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /quote-requests [post]
func (h *QuoteRequestHandler) Submit(c *gin.Context) {
	var payload request.QuoteFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewValidationError("INVALID_QUOTE_FORM", "Invalid quote request form", bindingDetails(err), http.StatusBadRequest))
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), sessionFromRequest(c), payload.ToForm())
	if err != nil {
		writeError(c, mapQuoteRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

// ListMine godoc
// @Summary      List the caller's quote requests
// @Tags         quote-requests
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Param        X-User-ID      header  string  true  "Caller id"
// @Success      200  {array}   response.QuoteRequestResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /quote-requests [get]
func (h *QuoteRequestHandler) ListMine(c *gin.Context) {
	items, err := h.usecase.ListMine(c.Request.Context(), sessionFromRequest(c))
	if err != nil {
		writeError(c, mapQuoteRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequests(items))
}

// GetByID godoc
// @Summary      Get a quote request
// @Tags         quote-requests
// @Produce      json
// @Param        id  path  string  true  "Quote request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quote-requests/{id} [get]
func (h *QuoteRequestHandler) GetByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), sessionFromRequest(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// Accept godoc
// @Summary      Accept a pending quote request
// @Tags         quote-requests
// @Produce      json
// @Param        id  path  string  true  "Quote request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/accept [patch]
func (h *QuoteRequestHandler) Accept(c *gin.Context) {
	h.patchStatus(c, h.usecase.Accept)
}

// Decline godoc
// @Summary      Decline a pending quote request
// @Tags         quote-requests
// @Produce      json
// @Param        id  path  string  true  "Quote request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/decline [patch]
func (h *QuoteRequestHandler) Decline(c *gin.Context) {
	h.patchStatus(c, h.usecase.Decline)
}

// Cancel godoc
// @Summary      Cancel a pending quote request
// @Description  Only the requester may cancel
// @Tags         quote-requests
// @Produce      json
// @Param        id  path  string  true  "Quote request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/cancel [patch]
func (h *QuoteRequestHandler) Cancel(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *QuoteRequestHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, sess entities.Session, id string) (entities.QuoteRequest, error),
) {
	q, err := updater(c.Request.Context(), sessionFromRequest(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

func mapQuoteRequestError(err error) *pkg.AppError {
	var sve *usecase.StepValidationError
	switch {
	case errors.As(err, &sve):
		steps := make(map[string]any, len(sve.Steps))
		for step, fields := range sve.Steps {
			steps[strconv.Itoa(int(step))] = fields
		}
		return pkg.NewValidationError("INVALID_QUOTE_FORM", "Quote request form has invalid steps", map[string]any{"steps": steps}, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingSession):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidQuoteRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Quote request is no longer pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
