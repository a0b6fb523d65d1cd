// Package http provides HTTP handlers for application and API key management operations.
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

// ApplicationHandler handles HTTP requests for application registry operations.
type ApplicationHandler struct {
	applicationUseCase keysUseCase.ApplicationUseCase
	logger             *slog.Logger
}

// NewApplicationHandler creates a new application handler with required dependencies.
func NewApplicationHandler(
	applicationUseCase keysUseCase.ApplicationUseCase,
	logger *slog.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUseCase: applicationUseCase,
		logger:             logger,
	}
}

// CreateHandler registers a new application.
// POST /v1/applications
// Returns 201 Created with application data.
func (h *ApplicationHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateApplicationRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Create input for use case
	input := &keysDomain.CreateApplicationInput{
		Name:        req.Name,
		Description: req.Description,
	}

	// Call use case
	application, err := h.applicationUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapApplicationToResponse(application))
}

// GetHandler retrieves an application by ID.
// GET /v1/applications/:id
// Returns 200 OK with application data.
func (h *ApplicationHandler) GetHandler(c *gin.Context) {
	appID, ok := h.parseAppID(c)
	if !ok {
		return
	}

	application, err := h.applicationUseCase.Get(c.Request.Context(), appID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToResponse(application))
}

// ListHandler retrieves applications with pagination.
// GET /v1/applications?offset=0&limit=50
// Returns 200 OK with a list of applications.
func (h *ApplicationHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	applications, err := h.applicationUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationsToListResponse(applications))
}

// UpdateHandler updates an existing application's name and description.
// PUT /v1/applications/:id
// Returns 200 OK with updated application data.
func (h *ApplicationHandler) UpdateHandler(c *gin.Context) {
	appID, ok := h.parseAppID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Create input for use case
	input := &keysDomain.UpdateApplicationInput{
		Name:        req.Name,
		Description: req.Description,
	}

	// Call use case
	if err := h.applicationUseCase.Update(c.Request.Context(), appID, input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Get updated application to return
	application, err := h.applicationUseCase.Get(c.Request.Context(), appID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToResponse(application))
}

// DeleteHandler removes an application and all of its API keys.
// DELETE /v1/applications/:id
// Returns 204 No Content.
func (h *ApplicationHandler) DeleteHandler(c *gin.Context) {
	appID, ok := h.parseAppID(c)
	if !ok {
		return
	}

	if err := h.applicationUseCase.Delete(c.Request.Context(), appID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseAppID parses the application ID path parameter, writing a validation
// error response when it is not a valid UUID.
func (h *ApplicationHandler) parseAppID(c *gin.Context) (uuid.UUID, bool) {
	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid application ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return appID, true
}
