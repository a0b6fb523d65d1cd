package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/apikeys/internal/database"
	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
)

// applicationUseCase implements ApplicationUseCase for managing the application registry.
type applicationUseCase struct {
	txManager  database.TxManager
	appRepo    ApplicationRepository
	apiKeyRepo APIKeyRepository
}

// Create registers a new application with a generated identity and timestamps.
func (a *applicationUseCase) Create(
	ctx context.Context,
	createApplicationInput *keysDomain.CreateApplicationInput,
) (*keysDomain.Application, error) {
	now := time.Now().UTC()

	// Create the application entity
	application := &keysDomain.Application{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        createApplicationInput.Name,
		Description: createApplicationInput.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Persist the application
	if err := a.appRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// Get retrieves an application by ID.
// Returns ErrApplicationNotFound if the application doesn't exist.
func (a *applicationUseCase) Get(
	ctx context.Context,
	appID uuid.UUID,
) (*keysDomain.Application, error) {
	return a.appRepo.Get(ctx, appID)
}

// List retrieves applications ordered by ID with pagination support.
// Returns empty slice if no applications found.
func (a *applicationUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*keysDomain.Application, error) {
	return a.appRepo.List(ctx, offset, limit)
}

// Update modifies an application's name and description.
// Returns ErrApplicationNotFound if the application doesn't exist.
func (a *applicationUseCase) Update(
	ctx context.Context,
	appID uuid.UUID,
	updateApplicationInput *keysDomain.UpdateApplicationInput,
) error {
	// Get the existing application
	application, err := a.appRepo.Get(ctx, appID)
	if err != nil {
		return err
	}

	// Update mutable fields
	application.Name = updateApplicationInput.Name
	application.Description = updateApplicationInput.Description
	application.UpdatedAt = time.Now().UTC()

	// Persist the updated application
	return a.appRepo.Update(ctx, application)
}

// Delete removes an application and all of its API keys atomically.
// Deleted keys can never verify again: the fingerprint rows are gone before commit.
// Returns ErrApplicationNotFound if the application doesn't exist.
func (a *applicationUseCase) Delete(ctx context.Context, appID uuid.UUID) error {
	return a.txManager.WithTx(ctx, func(txCtx context.Context) error {
		// Confirm the application exists inside the transaction
		if _, err := a.appRepo.Get(txCtx, appID); err != nil {
			return err
		}

		// Remove owned keys first, then the application itself
		if err := a.apiKeyRepo.DeleteForApplication(txCtx, appID); err != nil {
			return err
		}
		return a.appRepo.Delete(txCtx, appID)
	})
}

// NewApplicationUseCase creates a new ApplicationUseCase with the provided dependencies.
func NewApplicationUseCase(
	txManager database.TxManager,
	appRepo ApplicationRepository,
	apiKeyRepo APIKeyRepository,
) ApplicationUseCase {
	return &applicationUseCase{
		txManager:  txManager,
		appRepo:    appRepo,
		apiKeyRepo: apiKeyRepo,
	}
}
