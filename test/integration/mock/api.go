package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest is one call received by the ApiMock.
type RecordedRequest struct {
	Headers map[string]string
	Query   map[string]string
	Body    map[string]any
}

type cannedResponse struct {
	status int
	body   any
}

// ApiMock stands in for an external HTTP API. Responses are keyed by
// method and path; unknown routes answer 200 with an empty object.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	responses map[string]cannedResponse
	requests  map[string][]RecordedRequest
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		responses: map[string]cannedResponse{},
		requests:  map[string][]RecordedRequest{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	request := RecordedRequest{
		Headers: map[string]string{},
		Query:   map[string]string{},
		Body:    map[string]any{},
	}
	_ = json.Unmarshal(body, &request.Body)
	for name, values := range r.Header {
		request.Headers[name] = values[0]
	}
	for name, values := range r.URL.Query() {
		request.Query[name] = values[0]
	}

	a.mu.Lock()
	a.requests[key] = append(a.requests[key], request)
	canned, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		canned = cannedResponse{status: http.StatusOK, body: map[string]any{}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(canned.status)
	_ = json.NewEncoder(w).Encode(canned.body)
}

func (a *ApiMock) SetResponse(method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = cannedResponse{status: status, body: response}
}

// GetRequests returns the calls received on method and path, oldest first.
func (a *ApiMock) GetRequests(method, path string) []RecordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]RecordedRequest(nil), a.requests[method+path]...)
}

// Reset forgets canned responses and recorded requests.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses = map[string]cannedResponse{}
	a.requests = map[string][]RecordedRequest{}
}
