package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	"github.com/allisson/apikeys/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

// mockApplicationUseCase is a mock implementation of ApplicationUseCase for testing.
type mockApplicationUseCase struct {
	mock.Mock
}

func (m *mockApplicationUseCase) Create(
	ctx context.Context,
	createApplicationInput *keysDomain.CreateApplicationInput,
) (*keysDomain.Application, error) {
	args := m.Called(ctx, createApplicationInput)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keysDomain.Application), args.Error(1)
}

func (m *mockApplicationUseCase) Get(ctx context.Context, appID uuid.UUID) (*keysDomain.Application, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keysDomain.Application), args.Error(1)
}

func (m *mockApplicationUseCase) List(ctx context.Context, offset, limit int) ([]*keysDomain.Application, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keysDomain.Application), args.Error(1)
}

func (m *mockApplicationUseCase) Update(
	ctx context.Context,
	appID uuid.UUID,
	updateApplicationInput *keysDomain.UpdateApplicationInput,
) error {
	args := m.Called(ctx, appID, updateApplicationInput)
	return args.Error(0)
}

func (m *mockApplicationUseCase) Delete(ctx context.Context, appID uuid.UUID) error {
	args := m.Called(ctx, appID)
	return args.Error(0)
}

// mockAPIKeyUseCase is a mock implementation of APIKeyUseCase for testing.
type mockAPIKeyUseCase struct {
	mock.Mock
}

func (m *mockAPIKeyUseCase) Issue(
	ctx context.Context,
	appID uuid.UUID,
	issueAPIKeyInput *keysDomain.IssueAPIKeyInput,
) (*keysDomain.IssueAPIKeyOutput, error) {
	args := m.Called(ctx, appID, issueAPIKeyInput)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keysDomain.IssueAPIKeyOutput), args.Error(1)
}

func (m *mockAPIKeyUseCase) List(ctx context.Context, appID uuid.UUID) ([]*keysDomain.APIKey, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keysDomain.APIKey), args.Error(1)
}

func (m *mockAPIKeyUseCase) Revoke(ctx context.Context, appID uuid.UUID, keyID uuid.UUID) error {
	args := m.Called(ctx, appID, keyID)
	return args.Error(0)
}

func (m *mockAPIKeyUseCase) Verify(ctx context.Context, plainKey string) (*keysDomain.APIKey, error) {
	args := m.Called(ctx, plainKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keysDomain.APIKey), args.Error(1)
}

func TestNewApplicationUseCaseWithMetrics(t *testing.T) {
	t.Parallel()

	decorator := NewApplicationUseCaseWithMetrics(&mockApplicationUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*ApplicationUseCase)(nil), decorator)
}

func TestApplicationMetricsDecorator_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockApplicationUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		createInput := &keysDomain.CreateApplicationInput{Name: "payments-service"}
		expected := testApplication()

		mockUseCase.On("Create", ctx, createInput).Return(expected, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "applications", "application_create", "success").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "applications", "application_create", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewApplicationUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Create(ctx, createInput)

		assert.NoError(t, err)
		assert.Equal(t, expected, result)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockApplicationUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		createInput := &keysDomain.CreateApplicationInput{Name: "payments-service"}
		expectedErr := errors.New("insert failed")

		mockUseCase.On("Create", ctx, createInput).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "applications", "application_create", "error").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "applications", "application_create", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		decorator := NewApplicationUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Create(ctx, createInput)

		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, result)
		mockMetrics.AssertExpectations(t)
	})
}

func TestApplicationMetricsDecorator_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockApplicationUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		appID := uuid.Must(uuid.NewV7())

		mockUseCase.On("Delete", ctx, appID).Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "applications", "application_delete", "success").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "applications", "application_delete", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewApplicationUseCaseWithMetrics(mockUseCase, mockMetrics)
		err := decorator.Delete(ctx, appID)

		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})
}

func TestNewAPIKeyUseCaseWithMetrics(t *testing.T) {
	t.Parallel()

	decorator := NewAPIKeyUseCaseWithMetrics(&mockAPIKeyUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*APIKeyUseCase)(nil), decorator)
}

func TestAPIKeyMetricsDecorator_Issue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockAPIKeyUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		appID := uuid.Must(uuid.NewV7())
		issueInput := &keysDomain.IssueAPIKeyInput{Name: "production"}
		expected := &keysDomain.IssueAPIKeyOutput{
			Key:      testAPIKey(appID),
			PlainKey: "sk_dGVzdA",
		}

		mockUseCase.On("Issue", ctx, appID, issueInput).Return(expected, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "keys", "key_issue", "success").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "keys", "key_issue", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewAPIKeyUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Issue(ctx, appID, issueInput)

		assert.NoError(t, err)
		assert.Equal(t, expected, result)
		mockMetrics.AssertExpectations(t)
	})
}

func TestAPIKeyMetricsDecorator_Verify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockAPIKeyUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		plainKey := "sk_invalid"

		mockUseCase.On("Verify", ctx, plainKey).Return(nil, keysDomain.ErrInvalidAPIKey).Once()
		mockMetrics.On("RecordOperation", ctx, "keys", "key_verify", "error").
			Return().
			Once()
		mockMetrics.On("RecordDuration", ctx, "keys", "key_verify", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		decorator := NewAPIKeyUseCaseWithMetrics(mockUseCase, mockMetrics)
		result, err := decorator.Verify(ctx, plainKey)

		assert.ErrorIs(t, err, keysDomain.ErrInvalidAPIKey)
		assert.Nil(t, result)
		mockMetrics.AssertExpectations(t)
	})
}
