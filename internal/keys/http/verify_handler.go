package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/apikeys/internal/errors"
	"github.com/allisson/apikeys/internal/httputil"
	"github.com/allisson/apikeys/internal/keys/http/dto"
	keysUseCase "github.com/allisson/apikeys/internal/keys/usecase"
)

// apiKeyHeader carries the plaintext key on verification requests.
const apiKeyHeader = "X-API-Key" //nolint:gosec // header name, not a credential

// VerifyHandler handles HTTP requests for API key verification.
type VerifyHandler struct {
	apiKeyUseCase keysUseCase.APIKeyUseCase
	logger        *slog.Logger
}

// NewVerifyHandler creates a new verify handler with required dependencies.
func NewVerifyHandler(apiKeyUseCase keysUseCase.APIKeyUseCase, logger *slog.Logger) *VerifyHandler {
	return &VerifyHandler{
		apiKeyUseCase: apiKeyUseCase,
		logger:        logger,
	}
}

// VerifyHandler checks a presented API key and reports the owning application.
// POST /v1/verify - key is presented via the X-API-Key header.
// Returns 200 OK when valid. Unknown, revoked, and expired keys all produce the
// same 401 response so callers cannot probe key state.
func (h *VerifyHandler) VerifyHandler(c *gin.Context) {
	plainKey := c.GetHeader(apiKeyHeader)
	if plainKey == "" {
		h.logger.Debug("verification failed: missing api key header")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	key, err := h.apiKeyUseCase.Verify(c.Request.Context(), plainKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAPIKeyToVerifyResponse(key))
}

// ProtectedHandler is a sample route guarded by RequireAPIKey middleware.
// GET /v1/protected
// Returns 200 OK with the verified key's application for demonstration purposes.
func (h *VerifyHandler) ProtectedHandler(c *gin.Context) {
	key, ok := GetAPIKey(c.Request.Context())
	if !ok {
		// Should never happen if middleware is working correctly
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "access granted",
		"app_id":  key.AppID.String(),
		"key_id":  key.ID.String(),
	})
}
