// Package testutil provides common test utilities for handler and integration tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewRequest creates a simple HTTP request without a body.
func NewRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

// NewLookupRequest builds GET /?num=<num>.
func NewLookupRequest(t *testing.T, num string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "/?num="+url.QueryEscape(num), nil)
}

// DoRequest executes a request against a handler and returns the recorder.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// AssertStatus asserts the response status code matches expected.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, rr.Code, "unexpected status code")
}

// AssertFailure asserts a 400 with the {"success":false,"error":message} body, byte for byte.
func AssertFailure(t *testing.T, rr *httptest.ResponseRecorder, message string) {
	t.Helper()
	AssertStatus(t, rr, http.StatusBadRequest)
	assert.Equal(t, `{"success":false,"error":`+mustQuote(t, message)+`}`, rr.Body.String())
}

// AssertCORS asserts the permissive CORS headers are present.
func AssertCORS(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
}

func mustQuote(t *testing.T, s string) string {
	t.Helper()
	b, err := json.Marshal(s)
	require.NoError(t, err)
	return string(b)
}

// Upstream is a recording httptest server standing in for a lookup service.
type Upstream struct {
	*httptest.Server

	calls atomic.Int64
	mu    sync.Mutex
	query []url.Values
}

// NewUpstream starts a test server that records every request's query and
// delegates the answer to fn. The server is closed on test cleanup.
func NewUpstream(t *testing.T, fn http.HandlerFunc) *Upstream {
	t.Helper()
	u := &Upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		u.mu.Lock()
		u.query = append(u.query, r.URL.Query())
		u.mu.Unlock()
		fn(w, r)
	}))
	t.Cleanup(u.Close)
	return u
}

// Calls reports how many requests the server received.
func (u *Upstream) Calls() int {
	return int(u.calls.Load())
}

// Queries returns a copy of the recorded query strings in arrival order.
func (u *Upstream) Queries() []url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]url.Values, len(u.query))
	copy(out, u.query)
	return out
}

// JSON answers with status and a raw JSON body.
func JSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
