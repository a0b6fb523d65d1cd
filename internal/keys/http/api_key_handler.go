package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/apikeys/internal/httputil"
	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	"github.com/allisson/apikeys/internal/keys/http/dto"
	keysUseCase "github.com/allisson/apikeys/internal/keys/usecase"
	customValidation "github.com/allisson/apikeys/internal/validation"
)

// APIKeyHandler handles HTTP requests for API key lifecycle operations.
type APIKeyHandler struct {
	apiKeyUseCase keysUseCase.APIKeyUseCase
	logger        *slog.Logger
}

// NewAPIKeyHandler creates a new API key handler with required dependencies.
func NewAPIKeyHandler(apiKeyUseCase keysUseCase.APIKeyUseCase, logger *slog.Logger) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyUseCase: apiKeyUseCase,
		logger:        logger,
	}
}

// IssueHandler issues a new API key for an application.
// POST /v1/applications/:id/keys
// Returns 201 Created with the plaintext key. SECURITY: The plaintext is shown
// exactly once in this response and cannot be recovered afterwards.
func (h *APIKeyHandler) IssueHandler(c *gin.Context) {
	appID, ok := h.parseAppID(c)
	if !ok {
		return
	}

	var req dto.IssueAPIKeyRequest

	// An empty body means default name and no expiration
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.HandleValidationErrorGin(c, err, h.logger)
			return
		}
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Create input for use case
	input := &keysDomain.IssueAPIKeyInput{
		Name:      req.Name,
		ExpiresAt: req.ExpiresAt,
	}

	// Call use case
	output, err := h.apiKeyUseCase.Issue(c.Request.Context(), appID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIssueOutputToResponse(output))
}

// ListHandler retrieves the metadata of all keys owned by an application.
// GET /v1/applications/:id/keys
// Returns 200 OK with key metadata. Plaintext and fingerprints are never included.
func (h *APIKeyHandler) ListHandler(c *gin.Context) {
	appID, ok := h.parseAppID(c)
	if !ok {
		return
	}

	keys, err := h.apiKeyUseCase.List(c.Request.Context(), appID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAPIKeysToListResponse(keys))
}

// RevokeHandler permanently deactivates an API key.
// DELETE /v1/applications/:id/keys/:key_id
// Returns 204 No Content. Idempotent.
func (h *APIKeyHandler) RevokeHandler(c *gin.Context) {
	appID, ok := h.parseAppID(c)
	if !ok {
		return
	}

	keyID, err := uuid.Parse(c.Param("key_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid API key ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.apiKeyUseCase.Revoke(c.Request.Context(), appID, keyID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseAppID parses the application ID path parameter, writing a validation
// error response when it is not a valid UUID.
func (h *APIKeyHandler) parseAppID(c *gin.Context) (uuid.UUID, bool) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid application ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return appID, true
}
