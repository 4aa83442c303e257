package controllers

import (
	"frontdesk/errors"
	"frontdesk/response"

	"github.com/gin-gonic/gin"
)

// handleError writes err in the response envelope.
func handleError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeBookingNotFound:
		response.NotFound(c)
	case errors.ErrCodeConfirmationRequired:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeStoreLoad, errors.ErrCodeStoreSave:
		response.ServerError(c)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		response.Error(c, 0, appErr.Message)
	}
}
