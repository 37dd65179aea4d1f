package handler

import (
	"errors"
	"net/http"

	"package-intake/internal/domain/clia"
	"package-intake/internal/domain/client"
	"package-intake/internal/domain/reference"
	"package-intake/internal/domain/shipment"
	"package-intake/internal/logger"
	appErrors "package-intake/pkg/errors"
	"package-intake/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses: missing rows are 404,
// bad input is 400, anything else is a 500 with the detail kept in the log
// rather than the response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shipment.ErrShipmentNotFound),
		errors.Is(err, reference.ErrReferenceNotFound),
		errors.Is(err, client.ErrClientNotFound),
		errors.Is(err, clia.ErrAdminNotFound),
		errors.Is(err, clia.ErrMemberNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())

	case errors.Is(err, appErrors.ErrInvalidInput),
		errors.Is(err, appErrors.ErrInvalidDate),
		errors.Is(err, appErrors.ErrInvalidDateRange),
		errors.Is(err, appErrors.ErrInvalidLimit):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())

	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR" {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
