package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/allisson/apikeys/internal/errors"
	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	"github.com/allisson/apikeys/internal/keys/http/dto"
	"github.com/allisson/apikeys/internal/keys/usecase/mocks"
)

// setupTestApplicationHandler creates a test handler with mocked dependencies.
func setupTestApplicationHandler(t *testing.T) (*ApplicationHandler, *mocks.MockApplicationUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockApplicationUseCase := mocks.NewMockApplicationUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewApplicationHandler(mockApplicationUseCase, logger)

	return handler, mockApplicationUseCase
}

func testApplication() *keysDomain.Application {
	now := time.Now().UTC()
	return &keysDomain.Application{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        "payments-service",
		Description: "Handles payment processing",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestApplicationHandler_CreateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		application := testApplication()
		request := dto.CreateApplicationRequest{
			Name:        "payments-service",
			Description: "Handles payment processing",
		}

		mockUseCase.EXPECT().
			Create(mock.Anything, &keysDomain.CreateApplicationInput{
				Name:        "payments-service",
				Description: "Handles payment processing",
			}).
			Return(application, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/applications", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ApplicationResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, application.ID.String(), response.ID)
		assert.Equal(t, "payments-service", response.Name)
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		handler, _ := setupTestApplicationHandler(t)

		request := dto.CreateApplicationRequest{Name: ""}

		c, w := createTestContext(http.MethodPost, "/v1/applications", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		handler, _ := setupTestApplicationHandler(t)

		request := dto.CreateApplicationRequest{Name: "   "}

		c, w := createTestContext(http.MethodPost, "/v1/applications", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestApplicationHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/applications", nil)
		c.Request.Body = io.NopCloser(strings.NewReader("{invalid json"))

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApplicationHandler_GetHandler(t *testing.T) {
	t.Run("Success_ExistingApplication", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		application := testApplication()

		mockUseCase.EXPECT().
			Get(mock.Anything, application.ID).
			Return(application, nil).
			Once()

		c, w := createTestContextWithParams(
			http.MethodGet,
			"/v1/applications/"+application.ID.String(),
			nil,
			gin.Params{{Key: "id", Value: application.ID.String()}},
		)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ApplicationResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, application.ID.String(), response.ID)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		appID := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().
			Get(mock.Anything, appID).
			Return(nil, keysDomain.ErrApplicationNotFound).
			Once()

		c, w := createTestContextWithParams(
			http.MethodGet,
			"/v1/applications/"+appID.String(),
			nil,
			gin.Params{{Key: "id", Value: appID.String()}},
		)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidUUID", func(t *testing.T) {
		handler, _ := setupTestApplicationHandler(t)

		c, w := createTestContextWithParams(
			http.MethodGet,
			"/v1/applications/not-a-uuid",
			nil,
			gin.Params{{Key: "id", Value: "not-a-uuid"}},
		)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApplicationHandler_ListHandler(t *testing.T) {
	t.Run("Success_ListWithDefaults", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		applications := []*keysDomain.Application{testApplication(), testApplication()}

		mockUseCase.EXPECT().
			List(mock.Anything, 0, 50).
			Return(applications, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/applications", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListApplicationsResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Data, 2)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		handler, _ := setupTestApplicationHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/applications?offset=-1", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApplicationHandler_UpdateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		application := testApplication()
		request := dto.UpdateApplicationRequest{
			Name:        "payments-service-v2",
			Description: "updated",
		}

		mockUseCase.EXPECT().
			Update(mock.Anything, application.ID, &keysDomain.UpdateApplicationInput{
				Name:        "payments-service-v2",
				Description: "updated",
			}).
			Return(nil).
			Once()

		updated := *application
		updated.Name = "payments-service-v2"
		mockUseCase.EXPECT().
			Get(mock.Anything, application.ID).
			Return(&updated, nil).
			Once()

		c, w := createTestContextWithParams(
			http.MethodPut,
			"/v1/applications/"+application.ID.String(),
			request,
			gin.Params{{Key: "id", Value: application.ID.String()}},
		)

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ApplicationResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "payments-service-v2", response.Name)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		appID := uuid.Must(uuid.NewV7())
		request := dto.UpdateApplicationRequest{Name: "new-name"}

		mockUseCase.EXPECT().
			Update(mock.Anything, appID, mock.Anything).
			Return(keysDomain.ErrApplicationNotFound).
			Once()

		c, w := createTestContextWithParams(
			http.MethodPut,
			"/v1/applications/"+appID.String(),
			request,
			gin.Params{{Key: "id", Value: appID.String()}},
		)

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApplicationHandler_DeleteHandler(t *testing.T) {
	t.Run("Success_CascadeDelete", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		appID := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().
			Delete(mock.Anything, appID).
			Return(nil).
			Once()

		c, w := createTestContextWithParams(
			http.MethodDelete,
			"/v1/applications/"+appID.String(),
			nil,
			gin.Params{{Key: "id", Value: appID.String()}},
		)

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		appID := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().
			Delete(mock.Anything, appID).
			Return(keysDomain.ErrApplicationNotFound).
			Once()

		c, w := createTestContextWithParams(
			http.MethodDelete,
			"/v1/applications/"+appID.String(),
			nil,
			gin.Params{{Key: "id", Value: appID.String()}},
		)

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_StorageUnavailable", func(t *testing.T) {
		handler, mockUseCase := setupTestApplicationHandler(t)

		appID := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().
			Delete(mock.Anything, appID).
			Return(apperrors.Wrap(apperrors.ErrUnavailable, "database down")).
			Once()

		c, w := createTestContextWithParams(
			http.MethodDelete,
			"/v1/applications/"+appID.String(),
			nil,
			gin.Params{{Key: "id", Value: appID.String()}},
		)

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
