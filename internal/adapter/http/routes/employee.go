package routes

import (
	"carwash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addEmployeeRoutes(rg *gin.RouterGroup, h *handlers.EmployeeHandler) {
	employees := rg.Group(PathEmployee)
	{
		employees.GET("", h.List)
		employees.GET("/search", h.Search)
		employees.GET("/:id", h.GetByID)
		employees.POST("", h.Create)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}
