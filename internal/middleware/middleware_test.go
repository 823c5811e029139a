package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlain/campus/internal/app/models/dto"
	"github.com/champlain/campus/internal/pkg/apperrors"
	"github.com/champlain/campus/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

func serveError(err error) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", apperrors.NewResourceNotFoundError("Course id not found: x"), http.StatusNotFound, `{"message":"Course id not found: x"}`},
		{"wrapped not found", fmt.Errorf("ctx: %w", apperrors.NewResourceNotFoundError("StudentId not found: y")), http.StatusNotFound, `{"message":"StudentId not found: y"}`},
		{"invalid input", apperrors.NewInvalidInputError("Provided Course id is invalid: 1"), http.StatusUnprocessableEntity, `{"message":"Provided Course id is invalid: 1"}`},
		{"bad request", apperrors.NewBadRequestError("Invalid request body: EOF"), http.StatusBadRequest, `{"message":"Invalid request body: EOF"}`},
		{"unclassified", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, `{"message":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestBindingError_Semester(t *testing.T) {
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var req dto.EnrollmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleAPIError(c, BindingError(err))
			return
		}
		c.Status(http.StatusNoContent)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"enrollmentYear":2021,"semester":"SPRING","studentId":"s","courseId":"c"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"semester must be one of: FALL, WINTER, SUMMER"}`, w.Body.String())

	w = post(`{"enrollmentYear":2021,"semester":"FALL","courseId":"c"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"studentId is required"}`, w.Body.String())

	w = post(`{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(`{"enrollmentYear":2021,"semester":"SUMMER","studentId":"s","courseId":"c"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Configure(logger.Config{Level: logger.InfoLevel, Output: &buf})
	t.Cleanup(func() { logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true}) })

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), `"status":200`)
}
