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

// CarWashHandler serves washes together with their resolved customer and
// vehicle.
type CarWashHandler struct {
	usecase usecase.ICarWashUseCase
}

func NewCarWashHandler(uc usecase.ICarWashUseCase) *CarWashHandler {
	return &CarWashHandler{usecase: uc}
}

func (h *CarWashHandler) List(c *gin.Context) {
	washes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, internalError("Error retrieving car washes", err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarWashDetailsList(washes))
}

func (h *CarWashHandler) Search(c *gin.Context) {
	washes, err := h.usecase.Search(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		renderError(c, internalError("Error searching car washes", err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarWashDetailsList(washes))
}

func (h *CarWashHandler) ListByCustomer(c *gin.Context) {
	washes, err := h.usecase.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		renderError(c, internalError("Error retrieving customer car washes", err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarWashDetailsList(washes))
}

func (h *CarWashHandler) ListByVehicle(c *gin.Context) {
	washes, err := h.usecase.ListByVehicle(c.Request.Context(), c.Param("licensePlate"))
	if err != nil {
		renderError(c, internalError("Error retrieving vehicle car washes", err))
		return
	}
	c.JSON(http.StatusOK, response.FromCarWashDetailsList(washes))
}

func (h *CarWashHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	wash, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, mapCarWashError(err, id))
		return
	}
	c.JSON(http.StatusOK, response.FromCarWashDetails(wash))
}

func (h *CarWashHandler) Create(c *gin.Context) {
	var payload request.CarWashRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, invalidPayload("Car wash", err))
		return
	}

	wash, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		renderError(c, mapCarWashError(err, payload.ID))
		return
	}

	c.Header("Location", c.FullPath()+"/"+wash.Wash.ID)
	c.JSON(http.StatusCreated, response.FromCarWashDetails(wash))
}

func (h *CarWashHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var payload request.CarWashRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, invalidPayload("Car wash", err))
		return
	}

	wash, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		renderError(c, mapCarWashError(err, id))
		return
	}
	c.JSON(http.StatusOK, response.FromCarWashDetails(wash))
}

func (h *CarWashHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		renderError(c, mapCarWashError(err, id))
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Car wash with ID '%s' deleted successfully", id)})
}

func mapCarWashError(err error, id string) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCarWashID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Car wash ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCarWashNotFound):
		return pkg.NewDomainErrorSimple("CAR_WASH_NOT_FOUND", fmt.Sprintf("Car wash with ID '%s' not found", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarWashAlreadyExists):
		return pkg.NewDomainErrorSimple("CAR_WASH_ALREADY_EXISTS", "A car wash with that ID already exists.", http.StatusConflict)
	default:
		return internalError("An internal error occurred", err)
	}
}
