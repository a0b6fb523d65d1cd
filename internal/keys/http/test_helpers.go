// Package http provides HTTP handlers for application and API key management operations.
package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// createTestContextWithParams creates a test Gin context with URL parameters set.
func createTestContextWithParams(
	method, path string,
	body interface{},
	params gin.Params,
) (*gin.Context, *httptest.ResponseRecorder) {
	c, w := createTestContext(method, path, body)
	c.Params = params
	return c, w
}
