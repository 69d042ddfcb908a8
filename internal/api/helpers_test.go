package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"adminconsole/internal/backend"
	"adminconsole/internal/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

type fakeBackend struct {
	t        *testing.T
	last     recordedRequest
	status   int
	ctype    string
	response string
}

func newFakeBackend(t *testing.T, status int, ctype, response string) (*fakeBackend, Set) {
	t.Helper()
	fb := &fakeBackend{t: t, status: status, ctype: ctype, response: response}
	srv := httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(srv.Close)

	client := backend.NewClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, zerolog.Nop())
	return fb, New(client, config.BackendConfig{PathPrefix: "/api", UserNameField: "fullName"})
}

func (f *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	f.last = recordedRequest{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.last.Body); err != nil {
			f.t.Errorf("request body is not a json object: %s", raw)
		}
	}
	if f.ctype != "" {
		w.Header().Set("Content-Type", f.ctype)
	}
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.response)
}
