package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/resumio/internal/apiclient"
)

// Request is a call received by FakeBackend.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
	Form        map[string][]string
	FileName    string
	FileBody    []byte
}

// FakeBackend is an httptest server standing in for the resume API. It
// records every request it receives.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []Request
}

// NewFakeBackend starts a FakeBackend that is closed when the test ends.
// Unregistered paths answer 404.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	f := &FakeBackend{handlers: make(map[string]http.HandlerFunc)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec := Request{Method: r.Method, Path: r.URL.Path, ContentType: r.Header.Get("Content-Type"), Body: body}

	r.Body = io.NopCloser(bytes.NewReader(body))
	if err := r.ParseMultipartForm(32 << 20); err == nil {
		rec.Form = r.MultipartForm.Value
		if fh, ok := r.MultipartForm.File["file"]; ok && len(fh) > 0 {
			rec.FileName = fh[0].Filename
			if file, err := fh[0].Open(); err == nil {
				rec.FileBody, _ = io.ReadAll(file)
				_ = file.Close()
			}
		}
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	h := f.handlers[r.URL.Path]
	f.mu.Unlock()

	if h == nil {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// Handle registers h for path.
func (f *FakeBackend) Handle(path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[path] = h
}

// JSON answers path with status and body encoded as JSON.
func (f *FakeBackend) JSON(path string, status int, body any) {
	f.Handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

// Requests returns the requests received for path, or all of them when path is "".
func (f *FakeBackend) Requests(path string) []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Request
	for _, r := range f.requests {
		if path == "" || r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Hits counts the requests received for path, or all of them when path is "".
func (f *FakeBackend) Hits(path string) int {
	return len(f.Requests(path))
}

// Client returns an apiclient.Client pointed at the fake backend, without a
// circuit breaker.
func (f *FakeBackend) Client() *apiclient.Client {
	return apiclient.New(apiclient.Options{BaseURL: f.Server.URL, Timeout: 5 * time.Second})
}
