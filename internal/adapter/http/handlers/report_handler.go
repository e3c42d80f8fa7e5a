package handlers

import (
	response "carwash/internal/adapter/http/dto/response"
	"carwash/internal/usecase"
	"carwash/pkg"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) ClientsToContact(c *gin.Context) {
	report, err := h.usecase.ClientsToContact(c.Request.Context())
	if err != nil {
		renderError(c, internalError("Error generating client contact report", err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientsToContact(report))
}

func (h *ReportHandler) WashStatistics(c *gin.Context) {
	stats, err := h.usecase.WashStatistics(c.Request.Context())
	if err != nil {
		renderError(c, internalError("Error generating wash statistics", err))
		return
	}
	c.JSON(http.StatusOK, response.FromWashStatistics(stats))
}

func (h *ReportHandler) CustomerActivity(c *gin.Context) {
	id := c.Param("customerId")
	activity, err := h.usecase.CustomerActivity(c.Request.Context(), id)
	if err != nil {
		renderError(c, mapReportError(err, id))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerActivity(activity))
}

func mapReportError(err error, customerID string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Customer ID is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", fmt.Sprintf("Customer with ID '%s' not found", customerID), http.StatusNotFound)
	default:
		return internalError("Error generating customer activity report", err)
	}
}
