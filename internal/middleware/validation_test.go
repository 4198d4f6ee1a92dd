package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type echoRequest struct {
	Email string `json:"email" validate:"required,email"`
	Count int    `json:"count" validate:"min=1"`
}

func validationRouter() *gin.Engine {
	router := gin.New()
	router.POST("/echo", func(c *gin.Context) {
		var req echoRequest
		ValidateRequest(&req)(c)
		if c.IsAborted() {
			return
		}
		c.JSON(http.StatusOK, req)
	})
	return router
}

func TestValidateRequestAcceptsValidBody(t *testing.T) {
	router := validationRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"email":"johndoe@college.edu","count":2}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateRequestRejectsMalformedJSON(t *testing.T) {
	router := validationRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestValidateRequestRejectsInvalidFields(t *testing.T) {
	router := validationRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"email":"not-an-email","count":0}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be a valid email address")
	assert.Contains(t, w.Body.String(), "must be at least")
}
