package routes

import (
	"log"
	"os"
	"strconv"

	_ "taller_pos/docs" // This will be auto-generated
	"taller_pos/internal/adapter/http/handlers"
	repository2 "taller_pos/internal/adapter/persistence/repository"
	"taller_pos/internal/infrastructure/database"
	"taller_pos/internal/infrastructure/identity"
	"taller_pos/internal/infrastructure/payments"
	"taller_pos/internal/usecase"
	"taller_pos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	xmlRepo := repository2.NewXmlProductsDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	identityService := identity.NewService(userRepo, logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, customerRepo, identityService, logger)
	phaseUseCase := usecase.NewPhaseUseCase(orderRepo, xmlRepo, paymentRepo, paymentGateway, nil, identityService, logger)
	xmlProductsUseCase := usecase.NewXmlProductsUseCase(xmlRepo, logger)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, customerRepo, userRepo, identityService, logger)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	phaseHandler := handlers.NewPhaseHandler(phaseUseCase)
	xmlProductsHandler := handlers.NewXmlProductsHandler(xmlProductsUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, phaseHandler, xmlProductsHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(userContextMiddleware())
}

// userContextMiddleware stamps the X-User-ID header onto the request
// context so the identity service can resolve the operator.
func userContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			ctx := identity.ContextWithUserID(c.Request.Context(), userID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
