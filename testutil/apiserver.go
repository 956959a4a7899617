package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest captures one request received by the fake backend.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// FakeBackend is an in-process stand-in for the back-office API. Handlers are
// registered per method and path (the /api prefix is implied); every request
// is recorded for later assertions.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	handlers map[string]http.HandlerFunc
}

// NewFakeBackend starts a fake backend that is shut down when the test ends.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	b := &FakeBackend{handlers: make(map[string]http.HandlerFunc)}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the backend's base URL (without the /api prefix).
func (b *FakeBackend) URL() string {
	return b.Server.URL
}

// Handle registers a fixed JSON response for method and path.
func (b *FakeBackend) Handle(method, path string, status int, body any) {
	b.HandleFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	})
}

// HandleRaw registers a fixed raw response for method and path.
func (b *FakeBackend) HandleRaw(method, path string, status int, body string) {
	b.HandleFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// HandleFunc registers a custom handler for method and path.
func (b *FakeBackend) HandleFunc(method, path string, fn http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[method+" /api"+path] = fn
}

func (b *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	fn, ok := b.handlers[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail": "not found"}`)
		return
	}
	fn(w, r)
}

// Requests returns a copy of all recorded requests.
func (b *FakeBackend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// RequestCount returns how many requests matched method and path (with the
// /api prefix implied).
func (b *FakeBackend) RequestCount(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r.Method == method && r.Path == "/api"+path {
			n++
		}
	}
	return n
}

// LastRequest returns the most recent recorded request, or nil.
func (b *FakeBackend) LastRequest() *RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return nil
	}
	r := b.requests[len(b.requests)-1]
	return &r
}
