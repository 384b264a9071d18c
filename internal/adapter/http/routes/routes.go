package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "quote_service/docs" // generated by swag init
	"quote_service/internal/adapter/http/handlers"
	"quote_service/internal/adapter/persistence/repository"
	"quote_service/internal/infrastructure/config"
	"quote_service/internal/infrastructure/database"
	"quote_service/internal/infrastructure/payments"
	"quote_service/internal/usecase"
	"quote_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the adapters the router hands to the use cases.
type Dependencies struct {
	QuoteRequests  interfaces.IQuoteRequestRepository
	LeadPayments   interfaces.ILeadPaymentRepository
	PaymentGateway interfaces.IPaymentGateway
	MockPayments   bool
}

// Run will start the server
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	deps, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	router, err := NewRouter(deps, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting http server", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func buildDependencies(ctx context.Context, cfg config.Config, log *zap.Logger) (Dependencies, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Dependencies{}, err
	}

	deps := Dependencies{
		QuoteRequests: repository.NewQuoteRequestDynamoRepository(ddb, cfg.QuoteRequestsTable),
		LeadPayments:  repository.NewLeadPaymentDynamoRepository(ddb, cfg.LeadPaymentsTable),
		MockPayments:  cfg.PaymentGatewayMock,
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("payment gateway not configured, lead purchases are disabled", zap.Error(err))
	} else {
		deps.PaymentGateway = gateway
	}
	return deps, nil
}

// NewRouter wires use cases and handlers onto a gin engine.
func NewRouter(deps Dependencies, log *zap.Logger) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	quoteUseCase := usecase.NewQuoteRequestUseCase(deps.QuoteRequests, deps.LeadPayments, log)
	formUseCase := usecase.NewQuoteFormUseCase(log)
	leadUseCase := usecase.NewLeadPaymentUseCase(deps.LeadPayments, deps.QuoteRequests, deps.PaymentGateway, deps.MockPayments, log)

	quoteHandler := handlers.NewQuoteRequestHandler(quoteUseCase)
	formHandler := handlers.NewQuoteFormHandler(formUseCase)
	leadHandler := handlers.NewLeadPaymentHandler(leadUseCase, deps.MockPayments, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRequestRoutes(v1, quoteHandler, leadHandler)
	addQuoteFormRoutes(v1, formHandler)

	return router, nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
