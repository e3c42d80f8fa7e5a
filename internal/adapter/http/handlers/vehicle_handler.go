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

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, internalError("Error retrieving vehicles", err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) Search(c *gin.Context) {
	vehicles, err := h.usecase.Search(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		renderError(c, internalError("Error searching vehicles", err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	plate := c.Param("id")
	vehicle, err := h.usecase.GetByID(c.Request.Context(), plate)
	if err != nil {
		renderError(c, mapVehicleError(err, plate))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, invalidPayload("Vehicle", err))
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		renderError(c, mapVehicleError(err, payload.LicensePlate))
		return
	}

	c.Header("Location", c.FullPath()+"/"+vehicle.LicensePlate)
	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Update(c *gin.Context) {
	plate := c.Param("id")
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, invalidPayload("Vehicle", err))
		return
	}

	vehicle, err := h.usecase.Update(c.Request.Context(), plate, payload.ToEntity())
	if err != nil {
		renderError(c, mapVehicleError(err, plate))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	plate := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), plate); err != nil {
		renderError(c, mapVehicleError(err, plate))
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Vehicle with license plate '%s' deleted successfully", plate)})
}

func mapVehicleError(err error, plate string) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidLicensePlate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "License plate is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", fmt.Sprintf("Vehicle with license plate '%s' not found", plate), http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleAlreadyExists):
		return pkg.NewDomainErrorSimple("VEHICLE_ALREADY_EXISTS", "A vehicle with that license plate already exists.", http.StatusConflict)
	default:
		return internalError("An internal error occurred", err)
	}
}
