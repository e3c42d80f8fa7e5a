package routes

import (
	"carwash/internal/adapter/http/handlers"
	"carwash/internal/config"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathAPI      = "/api"
	PathCustomer = "/Customer"
	PathVehicle  = "/Vehicle"
	PathEmployee = "/Employee"
	PathCarWash  = "/CarWash"
	PathReport   = "/Report"
)

// NewRouter builds the gin engine with middlewares, swagger and every API route.
func NewRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	setMiddlewares(router, cfg)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addCustomerRoutes(api, handlers.NewCustomerHandler(deps.Customers))
	addVehicleRoutes(api, handlers.NewVehicleHandler(deps.Vehicles))
	addEmployeeRoutes(api, handlers.NewEmployeeHandler(deps.Employees))
	addCarWashRoutes(api, handlers.NewCarWashHandler(deps.CarWashes))
	addReportRoutes(api, handlers.NewReportHandler(deps.Reports), handlers.NewReminderHandler(deps.Reminders))

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Location"},
		MaxAge:        12 * time.Hour,
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
