package handlers

import (
	request "carwash/internal/adapter/http/dto/request"
	response "carwash/internal/adapter/http/dto/response"
	"carwash/internal/usecase"
	"carwash/pkg"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes the customer registry.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, internalError("Error retrieving customers", err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) Search(c *gin.Context) {
	customers, err := h.usecase.Search(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		renderError(c, internalError("Error searching customers", err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	customer, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, mapCustomerError(err, id))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, invalidPayload("Customer", err))
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		renderError(c, mapCustomerError(err, payload.IDNumber))
		return
	}

	c.Header("Location", c.FullPath()+"/"+customer.IDNumber)
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, invalidPayload("Customer", err))
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		renderError(c, mapCustomerError(err, id))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		renderError(c, mapCustomerError(err, id))
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Customer with ID '%s' deleted successfully", id)})
}

func mapCustomerError(err error, id string) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Customer ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", fmt.Sprintf("Customer with ID '%s' not found", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerAlreadyExists):
		return pkg.NewDomainErrorSimple("CUSTOMER_ALREADY_EXISTS", "A customer with that ID already exists.", http.StatusConflict)
	default:
		return internalError("An internal error occurred", err)
	}
}
