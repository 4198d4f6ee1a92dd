package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campushq/mentorhub/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusUnauthorized, "AUTH_007"},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, "AUTH_005"},
		{"token revoked", apperrors.ErrTokenRevoked, http.StatusUnauthorized, "AUTH_004"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "AUTH_008"},
		{"invalid state transition", apperrors.ErrInvalidStateTransition, http.StatusConflict, "VAL_002"},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, "RES_002"},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, "RES_001"},
		{"meeting not found", apperrors.ErrMeetingNotFound, http.StatusNotFound, "RES_001"},
		{"message not found", apperrors.ErrMessageNotFound, http.StatusNotFound, "RES_001"},
		{"invalid email", apperrors.ErrInvalidEmail, http.StatusBadRequest, "AUTH_002"},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, "VAL_001"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	err := apperrors.NewCustomError(apperrors.ErrInvalidStateTransition, "completed meetings cannot change status")
	HandleAPIError(c, err)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "completed meetings cannot change status")
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("failed to get meeting: "+apperrors.ErrMeetingNotFound.Error()))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	wrapped := apperrors.NewCustomError(apperrors.ErrMeetingNotFound, "")
	HandleAPIError(c, wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
