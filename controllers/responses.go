package controllers

import (
	"net/http"

	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps a service-layer error onto the transport:
// Validation/InvalidState -> 400, NotFound -> 404, Forbidden -> 403,
// Conflict -> 409. Infrastructure errors become an opaque 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch services.KindOf(err) {
	case services.KindValidation, services.KindInvalidState:
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case services.KindNotFound:
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case services.KindForbidden:
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case services.KindConflict:
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.GetLogger().Error(fallback, zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
