package routes

import (
	"log"
	_ "oficina_os/docs" // This will be auto-generated
	"oficina_os/internal/adapter/http/handlers"
	repository2 "oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/infrastructure/payments"
	"oficina_os/internal/usecase"
	"oficina_os/internal/usecase/interfaces"
	"os"
	"strconv"

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

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceCatalogDynamoRepository(ddb)
	brandRepo := repository2.NewBrandDynamoRepository(ddb)
	equipmentRepo := repository2.NewEquipmentTypeDynamoRepository(ddb)
	statusRepo := repository2.NewStatusDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	paymentRepo := repository2.NewOrderPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, serviceRepo)
	taxonomyUseCase := usecase.NewTaxonomyUseCase(brandRepo, equipmentRepo, statusRepo, orderRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, statusRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, statusRepo, paymentGateway)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo, clientRepo, brandRepo, equipmentRepo, statusRepo, expenseRepo)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClientRoutes(v1, clientHandler)
	addCatalogRoutes(v1, catalogHandler)
	addTaxonomyRoutes(v1, taxonomyHandler)
	addOrderRoutes(v1, orderHandler, paymentHandler)
	addExpenseRoutes(v1, expenseHandler)
	addReportRoutes(v1, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
