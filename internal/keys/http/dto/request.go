// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/apikeys/internal/validation"
)

// CreateApplicationRequest contains the parameters for registering a new application.
type CreateApplicationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks if the create application request is valid.
func (r *CreateApplicationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// UpdateApplicationRequest contains the parameters for updating an existing application.
type UpdateApplicationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks if the update application request is valid.
func (r *UpdateApplicationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// IssueAPIKeyRequest contains the parameters for issuing a new API key.
// Name is optional; a default is derived from the owning application when empty.
// ExpiresAt is optional; a key without it never expires. A past timestamp is
// accepted and simply yields a key that is already expired, since expiry is
// evaluated lazily at verification time.
type IssueAPIKeyRequest struct {
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// Validate checks if the issue API key request is valid.
func (r *IssueAPIKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Length(1, 255),
		),
	)
}
