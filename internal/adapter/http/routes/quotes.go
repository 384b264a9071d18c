package routes

import (
	"quote_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathQuoteRequests = "/quote-requests"
	PathQuoteForms    = "/quote-forms"
	PathCalculators   = "/calculators"
	PathLeadPayments  = "/lead-payments"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addQuoteRequestRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteRequestHandler, leadHandler *handlers.LeadPaymentHandler) {
	quotes := rg.Group(PathQuoteRequests)
	{
		quotes.POST("", quoteHandler.Submit)
		quotes.GET("", quoteHandler.ListMine)
		quotes.GET("/:id", quoteHandler.GetByID)
		quotes.PATCH("/:id/accept", quoteHandler.Accept)
		quotes.PATCH("/:id/decline", quoteHandler.Decline)
		quotes.PATCH("/:id/cancel", quoteHandler.Cancel)

		quotes.POST("/:id/lead-payments", leadHandler.Purchase)
		quotes.GET("/:id/lead-payments", leadHandler.GetLatest)
	}

	rg.GET(PathLeadPayments+"/:id", leadHandler.GetByID)
}

func addQuoteFormRoutes(rg *gin.RouterGroup, formHandler *handlers.QuoteFormHandler) {
	forms := rg.Group(PathQuoteForms)
	{
		forms.POST("/steps/:step/validate", formHandler.ValidateStep)
		forms.POST("/steps/:step/assist", formHandler.Assist)
		forms.POST("/analysis", formHandler.Analyze)
	}

	calculators := rg.Group(PathCalculators)
	{
		calculators.GET("/volume", formHandler.VolumeProfile)
		calculators.POST("/buyout", formHandler.Buyout)
	}
}
