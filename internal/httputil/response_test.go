package httputil_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/apikeys/internal/errors"
	"github.com/allisson/apikeys/internal/httputil"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found",
			err:            apperrors.Wrap(apperrors.ErrNotFound, "application not found"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
		{
			name:           "conflict",
			err:            apperrors.ErrConflict,
			expectedStatus: http.StatusConflict,
			expectedCode:   "conflict",
		},
		{
			name:           "invalid input",
			err:            apperrors.Wrap(apperrors.ErrInvalidInput, "name: must not be blank"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_input",
		},
		{
			name:           "unauthorized",
			err:            apperrors.Wrap(apperrors.ErrUnauthorized, "invalid api key"),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthorized",
		},
		{
			name:           "unavailable",
			err:            apperrors.Wrap(apperrors.ErrUnavailable, "connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "unavailable",
		},
		{
			name:           "unknown error",
			err:            apperrors.New("something unexpected"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext()

			httputil.HandleErrorGin(c, tt.err, discardLogger())

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response httputil.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedCode, response.Error)
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := testContext()

	httputil.HandleErrorGin(c, nil, discardLogger())

	assert.Empty(t, w.Body.String())
}

func TestHandleErrorGin_UnauthorizedNeverLeaksCause(t *testing.T) {
	// The body for a 401 is identical whether the key is unknown, revoked, or
	// expired; the internal cause must only ever appear in logs.
	causes := []error{
		apperrors.Wrap(apperrors.ErrUnauthorized, "api key not found"),
		apperrors.Wrap(apperrors.ErrUnauthorized, "api key revoked"),
		apperrors.Wrap(apperrors.ErrUnauthorized, "api key expired"),
	}

	var bodies []string
	for _, cause := range causes {
		c, w := testContext()
		httputil.HandleErrorGin(c, cause, discardLogger())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
	assert.NotContains(t, bodies[0], "revoked")
	assert.NotContains(t, bodies[0], "expired")
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := testContext()

	httputil.HandleBadRequestGin(c, apperrors.New("unexpected EOF"), discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, "unexpected EOF", response.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := testContext()

	httputil.HandleValidationErrorGin(c, apperrors.New("name: must not be blank"), discardLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response.Error)
	assert.Contains(t, response.Message, "must not be blank")
}
