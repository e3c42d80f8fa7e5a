package handlers

import (
	"carwash/internal/usecase"
	"carwash/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func renderError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidPayload(entity string, err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", entity+" data is required", err, http.StatusBadRequest)
}

// asValidationError reports whether err is a rule violation and, if so, its
// 400 rendering.
func asValidationError(err error) (*pkg.AppError, bool) {
	var vErr *usecase.ValidationError
	if !errors.As(err, &vErr) {
		return nil, false
	}
	return pkg.NewValidationError("Validation errors", vErr.Messages), true
}

func internalError(message string, err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", message, err, http.StatusInternalServerError)
}

type messageResponse struct {
	Message string `json:"message"`
}
