// Package test provides helpers shared by the HTTP tests.
package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/analytics"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/report"
	"github.com/pocketledger/backend/internal/router"
	"github.com/stretchr/testify/assert"
)

// APIResponse is the generic response shape used when only the error
// matters to the test.
type APIResponse struct {
	Links map[string]string
	Error string
}

// App wires a store backed by a file in a fresh temporary directory to a
// gin engine with all routes attached. Every call returns an isolated
// application.
func App(t *testing.T) (*gin.Engine, *ledger.Store) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	store := ledger.Open(filepath.Join(t.TempDir(), "pocketledger.json"))
	engine := analytics.New(store)
	controller := v1.Controller{
		Store:   store,
		Engine:  engine,
		Reports: report.New(engine),
	}

	r := gin.New()
	router.AttachRoutes(controller, r.Group(""))

	return r, store
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, r *gin.Engine, method, url, body string, headers ...map[string]string) httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// AssertHTTPStatus asserts the expected status code, printing the
// response body on mismatch.
func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	t.Helper()

	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}
