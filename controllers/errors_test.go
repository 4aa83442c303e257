package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{errors.ErrBookingNotFound, http.StatusNotFound},
		{errors.ErrConfirmationRequired, http.StatusConflict},
		{errors.NewAppError(errors.ErrCodeStoreSave, "failed to save", nil), http.StatusInternalServerError},
		{errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", nil), http.StatusUnauthorized},
		{errors.ErrInvalidRoom, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", errors.ErrMonthOutOfRange), http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		handleError(c, tc.err)
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
	}
}
