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

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, internalError("Error retrieving employees", err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(employees))
}

func (h *EmployeeHandler) Search(c *gin.Context) {
	employees, err := h.usecase.Search(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		renderError(c, internalError("Error searching employees", err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(employees))
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	employee, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, mapEmployeeError(err, id))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(employee))
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, invalidPayload("Employee", err))
		return
	}

	employee, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		renderError(c, mapEmployeeError(err, payload.ID))
		return
	}

	c.Header("Location", c.FullPath()+"/"+employee.ID)
	c.JSON(http.StatusCreated, response.FromEmployee(employee))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, invalidPayload("Employee", err))
		return
	}

	employee, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		renderError(c, mapEmployeeError(err, id))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(employee))
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		renderError(c, mapEmployeeError(err, id))
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Employee with ID '%s' deleted successfully", id)})
}

func mapEmployeeError(err error, id string) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Employee ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", fmt.Sprintf("Employee with ID '%s' not found", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmployeeAlreadyExists):
		return pkg.NewDomainErrorSimple("EMPLOYEE_ALREADY_EXISTS", "An employee with that ID already exists.", http.StatusConflict)
	default:
		return internalError("An internal error occurred", err)
	}
}
