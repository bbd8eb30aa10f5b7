package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"autonews/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomHTTPErrorHandler(t *testing.T) {
	tests := map[string]struct {
		err             error
		expectedCode    int
		expectedMessage string
	}{
		"should pass through 4xx message": {
			err:             echo.NewHTTPError(http.StatusNotFound, "article not found"),
			expectedCode:    http.StatusNotFound,
			expectedMessage: "article not found",
		},
		"should hide 5xx details": {
			err:             echo.NewHTTPError(http.StatusInternalServerError, "pq: connection refused"),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred. Please try again later.",
		},
		"should treat unknown errors as internal": {
			err:             errors.New("something leaked"),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred. Please try again later.",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := middleware.CustomHTTPErrorHandler(testLogger())
			handler(tc.err, c)

			assert.Equal(t, tc.expectedCode, rec.Code)

			var resp map[string]map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedMessage, resp["error"]["message"])
		})
	}
}

func TestCustomHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.NoContent(http.StatusOK))

	handler := middleware.CustomHTTPErrorHandler(testLogger())
	handler(errors.New("late failure"), c)

	// The original response stays untouched.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
