package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateApplicationRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := CreateApplicationRequest{
			Name:        "payments-service",
			Description: "Handles payment processing",
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_EmptyDescription", func(t *testing.T) {
		req := CreateApplicationRequest{
			Name: "payments-service",
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		req := CreateApplicationRequest{
			Name: "",
		}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		req := CreateApplicationRequest{
			Name: "   ",
		}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_NameTooLong", func(t *testing.T) {
		req := CreateApplicationRequest{
			Name: strings.Repeat("a", 256),
		}

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestUpdateApplicationRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := UpdateApplicationRequest{
			Name:        "payments-service-v2",
			Description: "Renamed",
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		req := UpdateApplicationRequest{
			Name: "",
		}

		err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		req := UpdateApplicationRequest{
			Name: "   ",
		}

		err := req.Validate()
		assert.Error(t, err)
	})
}

func TestIssueAPIKeyRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		expiresAt := time.Now().UTC().Add(24 * time.Hour)
		req := IssueAPIKeyRequest{
			Name:      "production",
			ExpiresAt: &expiresAt,
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_EmptyRequest", func(t *testing.T) {
		req := IssueAPIKeyRequest{}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Success_PastExpiration", func(t *testing.T) {
		// A key issued with a past expires_at is simply already expired;
		// verification rejects it lazily, issuance does not.
		expiresAt := time.Now().UTC().Add(-time.Second)
		req := IssueAPIKeyRequest{
			Name:      "already-expired",
			ExpiresAt: &expiresAt,
		}

		err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("Error_NameTooLong", func(t *testing.T) {
		req := IssueAPIKeyRequest{
			Name: strings.Repeat("a", 256),
		}

		err := req.Validate()
		assert.Error(t, err)
	})
}
