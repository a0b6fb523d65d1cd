// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	keysDomain "github.com/allisson/apikeys/internal/keys/domain"
)

// ApplicationResponse represents an application in API responses.
type ApplicationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapApplicationToResponse converts a domain application to an API response.
func MapApplicationToResponse(application *keysDomain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          application.ID.String(),
		Name:        application.Name,
		Description: application.Description,
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}
}

// ListApplicationsResponse represents a paginated list of applications in API responses.
type ListApplicationsResponse struct {
	Data []ApplicationResponse `json:"data"`
}

// MapApplicationsToListResponse converts a slice of domain applications to a list API response.
func MapApplicationsToListResponse(applications []*keysDomain.Application) ListApplicationsResponse {
	applicationResponses := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		applicationResponses = append(applicationResponses, MapApplicationToResponse(application))
	}
	return ListApplicationsResponse{
		Data: applicationResponses,
	}
}

// APIKeyResponse represents an API key in API responses.
// The fingerprint and plaintext are never exposed here; metadata only.
type APIKeyResponse struct {
	ID         string     `json:"id"`
	AppID      string     `json:"app_id"`
	Name       string     `json:"name"`
	IsActive   bool       `json:"is_active"`
	ExpiresAt  *time.Time `json:"expires_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// MapAPIKeyToResponse converts a domain API key to an API response.
func MapAPIKeyToResponse(key *keysDomain.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:         key.ID.String(),
		AppID:      key.AppID.String(),
		Name:       key.Name,
		IsActive:   key.IsActive,
		ExpiresAt:  key.ExpiresAt,
		LastUsedAt: key.LastUsedAt,
		CreatedAt:  key.CreatedAt,
	}
}

// ListAPIKeysResponse represents a list of API keys in API responses.
type ListAPIKeysResponse struct {
	Data []APIKeyResponse `json:"data"`
}

// MapAPIKeysToListResponse converts a slice of domain API keys to a list API response.
func MapAPIKeysToListResponse(keys []*keysDomain.APIKey) ListAPIKeysResponse {
	keyResponses := make([]APIKeyResponse, 0, len(keys))
	for _, key := range keys {
		keyResponses = append(keyResponses, MapAPIKeyToResponse(key))
	}
	return ListAPIKeysResponse{
		Data: keyResponses,
	}
}

// IssueAPIKeyResponse contains the result of issuing a new API key.
// SECURITY: The key is only returned once and must be saved securely.
type IssueAPIKeyResponse struct {
	ID        string     `json:"id"`
	AppID     string     `json:"app_id"`
	Key       string     `json:"key"`
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// MapIssueOutputToResponse converts an issue output to an API response.
func MapIssueOutputToResponse(output *keysDomain.IssueAPIKeyOutput) IssueAPIKeyResponse {
	return IssueAPIKeyResponse{
		ID:        output.Key.ID.String(),
		AppID:     output.Key.AppID.String(),
		Key:       output.PlainKey,
		Name:      output.Key.Name,
		ExpiresAt: output.Key.ExpiresAt,
		CreatedAt: output.Key.CreatedAt,
	}
}

// VerifyAPIKeyResponse contains the result of a successful key verification.
type VerifyAPIKeyResponse struct {
	Valid     bool       `json:"valid"`
	AppID     string     `json:"app_id"`
	KeyID     string     `json:"key_id"`
	KeyName   string     `json:"key_name"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// MapAPIKeyToVerifyResponse converts a verified domain API key to an API response.
func MapAPIKeyToVerifyResponse(key *keysDomain.APIKey) VerifyAPIKeyResponse {
	return VerifyAPIKeyResponse{
		Valid:     true,
		AppID:     key.AppID.String(),
		KeyID:     key.ID.String(),
		KeyName:   key.Name,
		ExpiresAt: key.ExpiresAt,
	}
}
