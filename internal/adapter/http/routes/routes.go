package routes

import (
	"log"
	"os"
	"strconv"

	_ "decora_ambientes/docs" // This will be auto-generated
	"decora_ambientes/internal/adapter/http/handlers"
	repository2 "decora_ambientes/internal/adapter/persistence/repository"
	"decora_ambientes/internal/infrastructure/database"
	"decora_ambientes/internal/infrastructure/notifications"
	"decora_ambientes/internal/infrastructure/payments"
	"decora_ambientes/internal/usecase"
	"decora_ambientes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	priceRepo := repository2.NewPriceSourceDynamoRepository(ddb)
	ledgerRepo := repository2.NewClientLedgerDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)

	ledgerUseCase := usecase.NewLedgerUseCase(ledgerRepo)

	var notifier interfaces.INotifier
	waNotifier, err := notifications.NewWhatsAppNotifier(
		os.Getenv("WHATSAPP_API_URL"),
		os.Getenv("WHATSAPP_API_TOKEN"),
		os.Getenv("WHATSAPP_COUNTRY_CODE"),
	)
	if err != nil {
		log.Printf("WhatsApp notifier not configured: %v", err)
	} else {
		notifier = waNotifier
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(priceRepo, quotationRepo, ledgerUseCase, notifier)
	depositUseCase := usecase.NewDepositUseCase(ledgerUseCase, paymentGateway, notifier)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	ledgerHandler := handlers.NewLedgerHandler(depositUseCase, ledgerUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quoteHandler, ledgerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
