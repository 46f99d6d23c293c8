package testsupport

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest captures what the fake server received.
type RecordedRequest struct {
	Method  string
	Path    string
	Query   string
	User    string
	Key     string
	Accept  string
	Content string
}

// Response is a canned reply for one endpoint path.
type Response struct {
	Status int
	Body   string
}

// FakePharos is an httptest server that records notification requests.
type FakePharos struct {
	server *httptest.Server

	mu        sync.Mutex
	requests  []RecordedRequest
	responses map[string]Response
	stalled   map[string]bool

	release   chan struct{}
	closeOnce sync.Once
}

// NewFakePharos starts a server that answers 200 with a JSON message unless
// a different response is registered for the path. It closes on cleanup.
func NewFakePharos(t testing.TB) *FakePharos {
	t.Helper()

	f := &FakePharos{
		responses: make(map[string]Response),
		stalled:   make(map[string]bool),
		release:   make(chan struct{}),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

// URL returns the server base URL.
func (f *FakePharos) URL() string { return f.server.URL }

// Close stops the server, making later requests fail at the transport level.
// Stalled requests are released first so Close does not wait on them.
func (f *FakePharos) Close() {
	f.closeOnce.Do(func() {
		close(f.release)
		f.server.Close()
	})
}

// Respond registers a canned response for an exact request path.
func (f *FakePharos) Respond(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = Response{Status: status, Body: body}
}

// Stall makes requests for path hang until the client gives up or the
// server closes. The request is still recorded.
func (f *FakePharos) Stall(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stalled[path] = true
}

// Requests returns a copy of everything received so far.
func (f *FakePharos) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Paths returns the request paths in arrival order.
func (f *FakePharos) Paths() []string {
	var paths []string
	for _, req := range f.Requests() {
		paths = append(paths, req.Path)
	}
	return paths
}

func (f *FakePharos) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   r.URL.RawQuery,
		User:    r.Header.Get("X-API-USER"),
		Key:     r.Header.Get("X-API-KEY"),
		Accept:  r.Header.Get("Accept"),
		Content: r.Header.Get("Content-Type"),
	})
	resp, ok := f.responses[r.URL.Path]
	stall := f.stalled[r.URL.Path]
	f.mu.Unlock()

	if stall {
		select {
		case <-r.Context().Done():
		case <-f.release:
		}
		return
	}

	if !ok {
		resp = Response{Status: http.StatusOK, Body: `{"message":"1 sent."}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}
