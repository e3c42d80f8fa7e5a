package routes

import (
	"carwash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomer)
	{
		customers.GET("", h.List)
		customers.GET("/search", h.Search)
		customers.GET("/:id", h.GetByID)
		customers.POST("", h.Create)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}
