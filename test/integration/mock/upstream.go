// Package mock provides test doubles for the integration suite.
package mock

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// UpstreamServer is a stub of the upstream operations API. Scenarios install
// a raw JSON body per path; unknown paths return 404 like the real API does
// for missing resources.
type UpstreamServer struct {
	mu        sync.Mutex
	responses map[string]string
	statuses  map[string]int
	server    *httptest.Server
}

// NewUpstreamServer creates a stub upstream with no fixtures installed.
func NewUpstreamServer() *UpstreamServer {
	return &UpstreamServer{
		responses: map[string]string{},
		statuses:  map[string]int{},
	}
}

// Start boots the HTTP server.
func (u *UpstreamServer) Start() {
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		body, ok := u.responses[r.URL.Path]
		status := u.statuses[r.URL.Path]
		u.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

// URL returns the stub's base URL.
func (u *UpstreamServer) URL() string {
	return u.server.URL
}

// Close shuts the stub down.
func (u *UpstreamServer) Close() {
	if u.server != nil {
		u.server.Close()
	}
}

// SetJSON installs a 200 response body for path.
func (u *UpstreamServer) SetJSON(path, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.responses[path] = body
	u.statuses[path] = http.StatusOK
}

// SetStatus installs a response with an explicit status code for path.
func (u *UpstreamServer) SetStatus(path string, status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.responses[path] = body
	u.statuses[path] = status
}

// Clear removes all fixtures, making every path a 404.
func (u *UpstreamServer) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.responses = map[string]string{}
	u.statuses = map[string]int{}
}
