package routes

import (
	"carwash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addVehicleRoutes(rg *gin.RouterGroup, h *handlers.VehicleHandler) {
	vehicles := rg.Group(PathVehicle)
	{
		vehicles.GET("", h.List)
		vehicles.GET("/search", h.Search)
		vehicles.GET("/:id", h.GetByID)
		vehicles.POST("", h.Create)
		vehicles.PUT("/:id", h.Update)
		vehicles.DELETE("/:id", h.Delete)
	}
}
