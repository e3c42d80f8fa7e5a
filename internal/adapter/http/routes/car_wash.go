package routes

import (
	"carwash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCarWashRoutes(rg *gin.RouterGroup, h *handlers.CarWashHandler) {
	washes := rg.Group(PathCarWash)
	{
		washes.GET("", h.List)
		washes.GET("/search", h.Search)
		washes.GET("/customer/:customerId", h.ListByCustomer)
		washes.GET("/vehicle/:licensePlate", h.ListByVehicle)
		washes.GET("/:id", h.GetByID)
		washes.POST("", h.Create)
		washes.PUT("/:id", h.Update)
		washes.DELETE("/:id", h.Delete)
	}
}
