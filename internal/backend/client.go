package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"adminconsole/internal/config"
)

var (
	ErrUnauthorized = errors.New("backend rejected credentials")
	ErrEmptyResult  = errors.New("empty response body")
	ErrNotJSON      = errors.New("response body is not json")
)

// Error is returned for transport failures (Status 0) and non-2xx responses.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

type requestIDKey struct{}

// WithRequestID tags ctx so backend calls made with it carry X-Request-Id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type Request struct {
	Method string
	Path   string
	Body   any
	Token  string
}

// Result is a normalised success body.
type Result struct {
	status int
	raw    []byte
	json   bool
}

func (r *Result) Status() int  { return r.status }
func (r *Result) Empty() bool  { return len(r.raw) == 0 }
func (r *Result) IsJSON() bool { return r.json }
func (r *Result) Text() string { return string(r.raw) }

func (r *Result) Decode(v any) error {
	if r.Empty() {
		return ErrEmptyResult
	}
	if !r.json {
		return ErrNotJSON
	}
	if err := json.Unmarshal(r.raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg config.BackendConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}

func (c *Client) Do(ctx context.Context, req Request) (*Result, error) {
	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.URL(req.Path), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if id := requestIDFrom(ctx); id != "" {
		httpReq.Header.Set("X-Request-Id", id)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", req.Path).Msg("backend unreachable")
		return nil, &Error{Message: "network error: " + err.Error(), Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Message: errorMessage(resp, isJSON)}
	}

	if resp.StatusCode == http.StatusNoContent {
		return &Result{status: resp.StatusCode}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: "read response: " + err.Error(), Err: err}
	}
	raw = bytes.TrimSpace(raw)

	// Some endpoints answer JSON with a text/plain content type.
	if !isJSON && len(raw) > 0 && json.Valid(raw) {
		isJSON = true
	}

	return &Result{status: resp.StatusCode, raw: raw, json: isJSON}, nil
}

func errorMessage(resp *http.Response, isJSON bool) string {
	fallback := fmt.Sprintf("HTTP %d", resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fallback
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fallback
	}

	if !isJSON {
		return string(raw)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	if obj, ok := body.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			return msg
		}
	}
	compact, err := json.Marshal(body)
	if err != nil {
		return fallback
	}
	return string(compact)
}
