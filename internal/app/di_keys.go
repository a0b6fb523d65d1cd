package app

import (
	"fmt"

	keysHTTP "github.com/allisson/apikeys/internal/keys/http"
	keysRepository "github.com/allisson/apikeys/internal/keys/repository"
	keysService "github.com/allisson/apikeys/internal/keys/service"
	keysUseCase "github.com/allisson/apikeys/internal/keys/usecase"
)

// KeyService returns the key generation and hashing service.
func (c *Container) KeyService() keysService.KeyService {
	c.keyServiceInit.Do(func() {
		c.keyService = keysService.NewKeyService()
	})
	return c.keyService
}

// ApplicationRepository returns the application repository based on database driver.
func (c *Container) ApplicationRepository() (keysUseCase.ApplicationRepository, error) {
	var err error
	c.applicationRepoInit.Do(func() {
		c.applicationRepository, err = c.initApplicationRepository()
		if err != nil {
			c.initErrors["applicationRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applicationRepository"]; exists {
		return nil, storedErr
	}
	return c.applicationRepository, nil
}

// APIKeyRepository returns the API key repository based on database driver.
func (c *Container) APIKeyRepository() (keysUseCase.APIKeyRepository, error) {
	var err error
	c.apiKeyRepoInit.Do(func() {
		c.apiKeyRepository, err = c.initAPIKeyRepository()
		if err != nil {
			c.initErrors["apiKeyRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiKeyRepository"]; exists {
		return nil, storedErr
	}
	return c.apiKeyRepository, nil
}

// ApplicationUseCase returns the application use case.
func (c *Container) ApplicationUseCase() (keysUseCase.ApplicationUseCase, error) {
	var err error
	c.applicationUseCaseInit.Do(func() {
		c.applicationUseCase, err = c.initApplicationUseCase()
		if err != nil {
			c.initErrors["applicationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applicationUseCase"]; exists {
		return nil, storedErr
	}
	return c.applicationUseCase, nil
}

// APIKeyUseCase returns the API key use case.
func (c *Container) APIKeyUseCase() (keysUseCase.APIKeyUseCase, error) {
	var err error
	c.apiKeyUseCaseInit.Do(func() {
		c.apiKeyUseCase, err = c.initAPIKeyUseCase()
		if err != nil {
			c.initErrors["apiKeyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiKeyUseCase"]; exists {
		return nil, storedErr
	}
	return c.apiKeyUseCase, nil
}

// ApplicationHandler returns the HTTP handler for application management operations.
func (c *Container) ApplicationHandler() (*keysHTTP.ApplicationHandler, error) {
	var err error
	c.applicationHandlerInit.Do(func() {
		c.applicationHandler, err = c.initApplicationHandler()
		if err != nil {
			c.initErrors["applicationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applicationHandler"]; exists {
		return nil, storedErr
	}
	return c.applicationHandler, nil
}

// APIKeyHandler returns the HTTP handler for API key operations.
func (c *Container) APIKeyHandler() (*keysHTTP.APIKeyHandler, error) {
	var err error
	c.apiKeyHandlerInit.Do(func() {
		c.apiKeyHandler, err = c.initAPIKeyHandler()
		if err != nil {
			c.initErrors["apiKeyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiKeyHandler"]; exists {
		return nil, storedErr
	}
	return c.apiKeyHandler, nil
}

// VerifyHandler returns the HTTP handler for key verification operations.
func (c *Container) VerifyHandler() (*keysHTTP.VerifyHandler, error) {
	var err error
	c.verifyHandlerInit.Do(func() {
		c.verifyHandler, err = c.initVerifyHandler()
		if err != nil {
			c.initErrors["verifyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["verifyHandler"]; exists {
		return nil, storedErr
	}
	return c.verifyHandler, nil
}

// initApplicationRepository creates the application repository based on the database driver.
func (c *Container) initApplicationRepository() (keysUseCase.ApplicationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for application repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return keysRepository.NewPostgreSQLApplicationRepository(db), nil
	case "mysql":
		return keysRepository.NewMySQLApplicationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAPIKeyRepository creates the API key repository based on the database driver.
func (c *Container) initAPIKeyRepository() (keysUseCase.APIKeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for api key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return keysRepository.NewPostgreSQLAPIKeyRepository(db), nil
	case "mysql":
		return keysRepository.NewMySQLAPIKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initApplicationUseCase creates the application use case with all its dependencies.
func (c *Container) initApplicationUseCase() (keysUseCase.ApplicationUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for application use case: %w", err)
	}

	applicationRepository, err := c.ApplicationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get application repository for application use case: %w", err)
	}

	apiKeyRepository, err := c.APIKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key repository for application use case: %w", err)
	}

	baseUseCase := keysUseCase.NewApplicationUseCase(txManager, applicationRepository, apiKeyRepository)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for application use case: %w", err)
		}
		return keysUseCase.NewApplicationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAPIKeyUseCase creates the API key use case with all its dependencies.
func (c *Container) initAPIKeyUseCase() (keysUseCase.APIKeyUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for api key use case: %w", err)
	}

	applicationRepository, err := c.ApplicationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get application repository for api key use case: %w", err)
	}

	apiKeyRepository, err := c.APIKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key repository for api key use case: %w", err)
	}

	keyService := c.KeyService()
	logger := c.Logger()

	baseUseCase := keysUseCase.NewAPIKeyUseCase(txManager, applicationRepository, apiKeyRepository, keyService, logger)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for api key use case: %w", err)
		}
		return keysUseCase.NewAPIKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initApplicationHandler creates the application HTTP handler.
func (c *Container) initApplicationHandler() (*keysHTTP.ApplicationHandler, error) {
	applicationUseCase, err := c.ApplicationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get application use case for application handler: %w", err)
	}

	return keysHTTP.NewApplicationHandler(applicationUseCase, c.Logger()), nil
}

// initAPIKeyHandler creates the API key HTTP handler.
func (c *Container) initAPIKeyHandler() (*keysHTTP.APIKeyHandler, error) {
	apiKeyUseCase, err := c.APIKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key use case for api key handler: %w", err)
	}

	return keysHTTP.NewAPIKeyHandler(apiKeyUseCase, c.Logger()), nil
}

// initVerifyHandler creates the verification HTTP handler.
func (c *Container) initVerifyHandler() (*keysHTTP.VerifyHandler, error) {
	apiKeyUseCase, err := c.APIKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get api key use case for verify handler: %w", err)
	}

	return keysHTTP.NewVerifyHandler(apiKeyUseCase, c.Logger()), nil
}
