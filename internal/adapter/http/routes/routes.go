package routes

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "oficina_xpto/docs" // This will be auto-generated
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/middleware"
	repository2 "oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/logger"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(log *zap.Logger) {
	ddb := database.ConnectDynamoDB(log)

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	stockRepo := repository2.NewStockDynamoRepository(ddb)
	quotaRepo := repository2.NewQuotaDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	cashRepo := repository2.NewCashDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, stockRepo, quotaRepo, log)
	stockUseCase := usecase.NewStockUseCase(stockRepo, orderRepo, log)
	invoiceUseCase := usecase.NewInvoiceUseCase(orderRepo, invoiceRepo, log)
	financeUseCase := usecase.NewFinanceUseCase(cashRepo, orderRepo, stockRepo, log)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway, log)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	stockHandler := handlers.NewStockHandler(stockUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	v1.Use(middleware.Actor())
	addPingRoutes(v1)
	addWorkshopRoutes(v1, orderHandler, stockHandler, invoiceHandler, financeHandler, paymentHandler)
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
