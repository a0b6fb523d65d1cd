package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
	"github.com/allisson/apikeys/internal/metrics"
)

// applicationUseCaseWithMetrics decorates ApplicationUseCase with metrics instrumentation.
type applicationUseCaseWithMetrics struct {
	next    ApplicationUseCase
	metrics metrics.BusinessMetrics
}

// NewApplicationUseCaseWithMetrics wraps an ApplicationUseCase with metrics recording.
func NewApplicationUseCaseWithMetrics(
	useCase ApplicationUseCase,
	m metrics.BusinessMetrics,
) ApplicationUseCase {
	return &applicationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for application creation operations.
func (a *applicationUseCaseWithMetrics) Create(
	ctx context.Context,
	createApplicationInput *keysDomain.CreateApplicationInput,
) (*keysDomain.Application, error) {
	start := time.Now()
	application, err := a.next.Create(ctx, createApplicationInput)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "applications", "application_create", status)
	a.metrics.RecordDuration(ctx, "applications", "application_create", time.Since(start), status)

	return application, err
}

// Get records metrics for application retrieval operations.
func (a *applicationUseCaseWithMetrics) Get(
	ctx context.Context,
	appID uuid.UUID,
) (*keysDomain.Application, error) {
	start := time.Now()
	application, err := a.next.Get(ctx, appID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "applications", "application_get", status)
	a.metrics.RecordDuration(ctx, "applications", "application_get", time.Since(start), status)

	return application, err
}

// List records metrics for application list operations.
func (a *applicationUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*keysDomain.Application, error) {
	start := time.Now()
	applications, err := a.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "applications", "application_list", status)
	a.metrics.RecordDuration(ctx, "applications", "application_list", time.Since(start), status)

	return applications, err
}

// Update records metrics for application update operations.
func (a *applicationUseCaseWithMetrics) Update(
	ctx context.Context,
	appID uuid.UUID,
	updateApplicationInput *keysDomain.UpdateApplicationInput,
) error {
	start := time.Now()
	err := a.next.Update(ctx, appID, updateApplicationInput)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "applications", "application_update", status)
	a.metrics.RecordDuration(ctx, "applications", "application_update", time.Since(start), status)

	return err
}

// Delete records metrics for application cascade delete operations.
func (a *applicationUseCaseWithMetrics) Delete(ctx context.Context, appID uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, appID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "applications", "application_delete", status)
	a.metrics.RecordDuration(ctx, "applications", "application_delete", time.Since(start), status)

	return err
}

// apiKeyUseCaseWithMetrics decorates APIKeyUseCase with metrics instrumentation.
type apiKeyUseCaseWithMetrics struct {
	next    APIKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewAPIKeyUseCaseWithMetrics wraps an APIKeyUseCase with metrics recording.
func NewAPIKeyUseCaseWithMetrics(useCase APIKeyUseCase, m metrics.BusinessMetrics) APIKeyUseCase {
	return &apiKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for key issuance operations.
func (a *apiKeyUseCaseWithMetrics) Issue(
	ctx context.Context,
	appID uuid.UUID,
	issueAPIKeyInput *keysDomain.IssueAPIKeyInput,
) (*keysDomain.IssueAPIKeyOutput, error) {
	start := time.Now()
	output, err := a.next.Issue(ctx, appID, issueAPIKeyInput)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "keys", "key_issue", status)
	a.metrics.RecordDuration(ctx, "keys", "key_issue", time.Since(start), status)

	return output, err
}

// List records metrics for key list operations.
func (a *apiKeyUseCaseWithMetrics) List(
	ctx context.Context,
	appID uuid.UUID,
) ([]*keysDomain.APIKey, error) {
	start := time.Now()
	keys, err := a.next.List(ctx, appID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "keys", "key_list", status)
	a.metrics.RecordDuration(ctx, "keys", "key_list", time.Since(start), status)

	return keys, err
}

// Revoke records metrics for key revocation operations.
func (a *apiKeyUseCaseWithMetrics) Revoke(
	ctx context.Context,
	appID uuid.UUID,
	keyID uuid.UUID,
) error {
	start := time.Now()
	err := a.next.Revoke(ctx, appID, keyID)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "keys", "key_revoke", status)
	a.metrics.RecordDuration(ctx, "keys", "key_revoke", time.Since(start), status)

	return err
}

// Verify records metrics for key verification operations.
func (a *apiKeyUseCaseWithMetrics) Verify(
	ctx context.Context,
	plainKey string,
) (*keysDomain.APIKey, error) {
	start := time.Now()
	key, err := a.next.Verify(ctx, plainKey)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "keys", "key_verify", status)
	a.metrics.RecordDuration(ctx, "keys", "key_verify", time.Since(start), status)

	return key, err
}
