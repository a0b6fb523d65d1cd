package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/apikeys/internal/errors"
	"github.com/allisson/apikeys/internal/httputil"
	keysUseCase "github.com/allisson/apikeys/internal/keys/usecase"
)

// RequireAPIKey provides authentication via an API key in the X-API-Key header.
//
// The middleware:
// 1. Extracts the plaintext key from the X-API-Key header
// 2. Verifies it using apiKeyUseCase.Verify()
// 3. Stores the verified key metadata in the request context
// 4. Allows downstream handlers to access it via GetAPIKey()
//
// Error handling:
//   - Missing X-API-Key header → 401 Unauthorized
//   - Unknown/revoked/expired key → 401 Unauthorized with an identical body,
//     so the response never reveals which of the three it was
//   - Storage failures → 500 Internal Server Error
func RequireAPIKey(apiKeyUseCase keysUseCase.APIKeyUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plainKey := c.GetHeader(apiKeyHeader)
		if plainKey == "" {
			logger.Debug("authentication failed: missing api key header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		key, err := apiKeyUseCase.Verify(c.Request.Context(), plainKey)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store the verified key in the request context
		c.Request = c.Request.WithContext(WithAPIKey(c.Request.Context(), key))
		c.Next()
	}
}
