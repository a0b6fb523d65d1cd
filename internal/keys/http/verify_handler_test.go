package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	"github.com/allisson/apikeys/internal/keys/http/dto"
	"github.com/allisson/apikeys/internal/keys/usecase/mocks"
)

// setupTestVerifyHandler creates a test handler with mocked dependencies.
func setupTestVerifyHandler(t *testing.T) (*VerifyHandler, *mocks.MockAPIKeyUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockAPIKeyUseCase := mocks.NewMockAPIKeyUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewVerifyHandler(mockAPIKeyUseCase, logger)

	return handler, mockAPIKeyUseCase
}

func TestVerifyHandler_VerifyHandler(t *testing.T) {
	t.Run("Success_ValidKey", func(t *testing.T) {
		handler, mockUseCase := setupTestVerifyHandler(t)

		key := testAPIKey(uuid.Must(uuid.NewV7()))

		mockUseCase.EXPECT().
			Verify(mock.Anything, "sk_valid-key").
			Return(key, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/verify", nil)
		c.Request.Header.Set("X-API-Key", "sk_valid-key")

		handler.VerifyHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.VerifyAPIKeyResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Valid)
		assert.Equal(t, key.AppID.String(), response.AppID)
		assert.Equal(t, key.ID.String(), response.KeyID)
		assert.Equal(t, key.Name, response.KeyName)
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		handler, _ := setupTestVerifyHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/verify", nil)

		handler.VerifyHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_InvalidKey", func(t *testing.T) {
		handler, mockUseCase := setupTestVerifyHandler(t)

		mockUseCase.EXPECT().
			Verify(mock.Anything, "sk_invalid").
			Return(nil, keysDomain.ErrInvalidAPIKey).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/verify", nil)
		c.Request.Header.Set("X-API-Key", "sk_invalid")

		handler.VerifyHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_ResponseNeverRevealsCause", func(t *testing.T) {
		handler, mockUseCase := setupTestVerifyHandler(t)

		// The usecase collapses unknown/revoked/expired into one error; the
		// HTTP layer must not decorate it with anything cause-specific.
		mockUseCase.EXPECT().
			Verify(mock.Anything, mock.Anything).
			Return(nil, keysDomain.ErrInvalidAPIKey).
			Twice()

		c1, w1 := createTestContext(http.MethodPost, "/v1/verify", nil)
		c1.Request.Header.Set("X-API-Key", "sk_revoked-somewhere")
		handler.VerifyHandler(c1)

		c2, w2 := createTestContext(http.MethodPost, "/v1/verify", nil)
		c2.Request.Header.Set("X-API-Key", "sk_expired-somewhere")
		handler.VerifyHandler(c2)

		assert.Equal(t, http.StatusUnauthorized, w1.Code)
		assert.Equal(t, w1.Body.String(), w2.Body.String())
	})
}

func TestVerifyHandler_ProtectedHandler(t *testing.T) {
	t.Run("Success_KeyInContext", func(t *testing.T) {
		handler, _ := setupTestVerifyHandler(t)

		key := testAPIKey(uuid.Must(uuid.NewV7()))

		c, w := createTestContext(http.MethodGet, "/v1/protected", nil)
		c.Request = c.Request.WithContext(WithAPIKey(c.Request.Context(), key))

		handler.ProtectedHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), key.AppID.String())
	})

	t.Run("Error_NoKeyInContext", func(t *testing.T) {
		handler, _ := setupTestVerifyHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/protected", nil)

		handler.ProtectedHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
