package handlers

import (
	"net/http"

	request "quote_service/internal/adapter/http/dto/request"
	response "quote_service/internal/adapter/http/dto/response"
	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quoteform"
	"quote_service/internal/usecase"
	"quote_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStep       = pkg.NewDomainErrorSimple("INVALID_STEP", "Step must be a positive number", http.StatusBadRequest)
	errInvalidVolume     = pkg.NewDomainErrorSimple("INVALID_VOLUME", "mono and colour must be non-negative integers", http.StatusBadRequest)
	errInvalidBuyoutBody = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// QuoteFormHandler serves the stateless form helpers used while the buyer fills
// in the form.
type QuoteFormHandler struct {
	usecase usecase.IQuoteFormUseCase
}

func NewQuoteFormHandler(uc usecase.IQuoteFormUseCase) *QuoteFormHandler {
	return &QuoteFormHandler{usecase: uc}
}

// ValidateStep godoc
// @Summary      Validate one form step
// @Tags         quote-forms
// @Accept       json
// @Produce      json
// @Param        step  path  int                       true  "Step number (1-6)"
// @Param        form  body  request.QuoteFormRequest  true  "Form so far"
// @Success      200  {object}  response.StepValidationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quote-forms/steps/{step}/validate [post]
func (h *QuoteFormHandler) ValidateStep(c *gin.Context) {
	step, form, ok := bindStepAndForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromStepResult(step, h.usecase.ValidateStep(step, form)))
}

// Assist godoc
// @Summary      Smart defaults and predictions for a step
// @Tags         quote-forms
// @Accept       json
// @Produce      json
// @Param        step  path  int                       true  "Step being entered"
// @Param        form  body  request.QuoteFormRequest  true  "Form so far"
// @Success      200  {object}  usecase.Assistance
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quote-forms/steps/{step}/assist [post]
func (h *QuoteFormHandler) Assist(c *gin.Context) {
	step, form, ok := bindStepAndForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.Assist(step, form))
}

// Analyze godoc
// @Summary      Advisory analysis of a form
// @Description  Business-logic, combination, volume and budget warnings plus monthly cost and buyout
// @Tags         quote-forms
// @Accept       json
// @Produce      json
// @Param        form  body  request.QuoteFormRequest  true  "Form so far"
// @Success      200  {object}  usecase.FormAnalysis
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quote-forms/analysis [post]
func (h *QuoteFormHandler) Analyze(c *gin.Context) {
	var payload request.QuoteFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewValidationError("INVALID_QUOTE_FORM", "Invalid quote request form", bindingDetails(err), http.StatusBadRequest))
		return
	}
	c.JSON(http.StatusOK, h.usecase.Analyze(payload.ToForm()))
}

// VolumeProfile godoc
// @Summary      Volume range, suggested speed and lead fee for a monthly volume
// @Tags         calculators
// @Produce      json
// @Param        mono    query  int  false  "Mono pages per month"
// @Param        colour  query  int  false  "Colour pages per month"
// @Success      200  {object}  usecase.VolumeProfile
// @Failure      400  {object}  pkg.HTTPError
// @Router       /calculators/volume [get]
func (h *QuoteFormHandler) VolumeProfile(c *gin.Context) {
	var q request.VolumeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidVolume)
		return
	}
	profile, err := h.usecase.VolumeProfile(q.Mono, q.Colour)
	if err != nil {
		writeError(c, errInvalidVolume)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Buyout godoc
// @Summary      Estimate an early lease buyout
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        body  body  request.BuyoutRequest  true  "Quarterly lease and contract end date"
// @Success      200  {object}  response.BuyoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /calculators/buyout [post]
func (h *QuoteFormHandler) Buyout(c *gin.Context) {
	var payload request.BuyoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBuyoutBody)
		return
	}
	c.JSON(http.StatusOK, response.BuyoutResponse{Buyout: h.usecase.Buyout(payload.QuarterlyLease, payload.EndTime())})
}

func bindStepAndForm(c *gin.Context) (quoteform.Step, entities.QuoteRequestForm, bool) {
	var uri request.StepURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, errInvalidStep)
		return 0, entities.QuoteRequestForm{}, false
	}
	var payload request.QuoteFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewValidationError("INVALID_QUOTE_FORM", "Invalid quote request form", bindingDetails(err), http.StatusBadRequest))
		return 0, entities.QuoteRequestForm{}, false
	}
	return quoteform.Step(uri.Step), payload.ToForm(), true
}
