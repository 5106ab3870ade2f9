package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/hovertip/pkg/observability"
)

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "default template",
			body: `{"label":"A","x":3.14159,"y":7}`,
			want: "A | X: 3.14159 | Y: 7",
		},
		{
			name: "precision",
			body: `{"template":"%s | X: %x.2 | Y: %y","label":"A","x":3.14159,"y":7}`,
			want: "A | X: 3.14 | Y: 7",
		},
		{
			name: "percent",
			body: `{"template":"%s: %p.1%","label":"Slice","percent":33.333,"x":0,"y":1}`,
			want: "Slice: 33.3%",
		},
		{
			name: "time axis with date format",
			body: `{"template":"%x","x":"2024-03-01T12:00:00Z","y":1,"xAxis":{"mode":"time"},"xDateFormat":"%Y-%m-%d"}`,
			want: "2024-03-01",
		},
		{
			name: "time axis tick format",
			body: `{"template":"%x","x":1709294400000,"y":1,"xAxis":{"mode":"time","timeFormat":"%H:%M"}}`,
			want: "12:00",
		},
		{
			name: "tick decimals",
			body: `{"template":"%y","x":0,"y":2.71828,"yAxis":{"tickDecimals":3}}`,
			want: "2.718",
		},
		{
			name: "categorical x",
			body: `{"template":"%x=%y","x":"Q3","y":12}`,
			want: "Q3=12",
		},
		{
			name: "no label keeps placeholder",
			body: `{"template":"%s","x":1,"y":2}`,
			want: "%s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, http.MethodPost, "/v1/format", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if got := decode[formatResponse](t, rec).Text; got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed", `{`, "INVALID_INPUT"},
		{"unknown field", `{"x":1,"y":2,"z":3}`, "INVALID_INPUT"},
		{"missing y", `{"x":1}`, "INVALID_INPUT"},
		{"control character", `{"template":"a\u0001","x":1,"y":2}`, "INVALID_TEMPLATE"},
		{"bad mode", `{"x":1,"y":2,"xAxis":{"mode":"log"}}`, "INVALID_INPUT"},
		{"dangling percent", `{"x":1,"y":2,"yDateFormat":"%"}`, "INVALID_DATE_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, http.MethodPost, "/v1/format", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if got := decode[errorResponse](t, rec); string(got.Code) != tt.code {
				t.Errorf("code = %q, want %q (%s)", got.Code, tt.code, got.Message)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name string
		body string
		want positionResponse
	}{
		{
			name: "fits",
			body: `{"pointer":{"x":100,"y":100},"size":{"w":50,"h":20},"viewport":{"width":800,"height":600}}`,
			want: positionResponse{X: 110, Y: 120, Anchor: pointJSON{X: 100, Y: 100}},
		},
		{
			name: "flips both",
			body: `{"pointer":{"x":790,"y":590},"size":{"w":50,"h":20},"viewport":{"width":800,"height":600}}`,
			want: positionResponse{X: 740, Y: 570, Anchor: pointJSON{X: 730, Y: 550}, FlippedX: true, FlippedY: true},
		},
		{
			name: "custom shifts and scroll",
			body: `{"pointer":{"x":1100,"y":100},"size":{"w":50,"h":20},"viewport":{"width":800,"height":600,"scrollX":1000},"shifts":{"x":0,"y":0}}`,
			want: positionResponse{X: 1100, Y: 100, Anchor: pointJSON{X: 1100, Y: 100}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, http.MethodPost, "/v1/position", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if got := decode[positionResponse](t, rec); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPositionRejectsEmptyViewport(t *testing.T) {
	rec := do(t, http.MethodPost, "/v1/position", `{"pointer":{"x":1,"y":1},"size":{"w":1,"h":1}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTheme(t *testing.T) {
	rec := do(t, http.MethodGet, "/v1/theme", "")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{".hovertip {", "white-space: nowrap", "z-index: 100"} {
		if !strings.Contains(body, want) {
			t.Errorf("theme missing %q:\n%s", want, body)
		}
	}
}

func TestPlugin(t *testing.T) {
	rec := do(t, http.MethodGet, "/v1/plugin", "")
	var got struct {
		Name           string `json:"name"`
		Version        string `json:"version"`
		DefaultOptions struct {
			Tooltip     bool `json:"tooltip"`
			TooltipOpts struct {
				Content      string             `json:"content"`
				XDateFormat  string             `json:"xDateFormat"`
				Shifts       map[string]float64 `json:"shifts"`
				DefaultTheme bool               `json:"defaultTheme"`
			} `json:"tooltipOpts"`
		} `json:"defaultOptions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "tooltip" || got.Version != "0.6.2" {
		t.Errorf("descriptor = %s %s", got.Name, got.Version)
	}
	opts := got.DefaultOptions
	if opts.Tooltip || opts.TooltipOpts.Content != "%s | X: %x | Y: %y" || !opts.TooltipOpts.DefaultTheme {
		t.Errorf("defaultOptions = %+v", opts)
	}
	if opts.TooltipOpts.Shifts["x"] != 10 || opts.TooltipOpts.Shifts["y"] != 20 {
		t.Errorf("shifts = %v", opts.TooltipOpts.Shifts)
	}
}

func TestHealthAndNotFound(t *testing.T) {
	rec := do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("healthz = %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, http.MethodGet, "/v2/nothing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if got := decode[errorResponse](t, rec); got.Code != "NOT_FOUND" {
		t.Errorf("code = %q", got.Code)
	}

	rec = do(t, http.MethodGet, "/v1/format", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/format status = %d, want 405", rec.Code)
	}
}

type recordingHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	requests []string
	statuses []int
	errs     int
}

func (h *recordingHooks) OnRequest(_ context.Context, method, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func (h *recordingHooks) OnError(context.Context, string, string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs++
}

func TestObservabilityHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetHTTPHooks(h)
	defer observability.Reset()

	do(t, http.MethodGet, "/healthz", "")
	do(t, http.MethodPost, "/v1/format", `{`)

	if len(h.requests) != 2 || h.requests[0] != "GET /healthz" {
		t.Errorf("requests = %v", h.requests)
	}
	if len(h.statuses) != 2 || h.statuses[0] != 200 || h.statuses[1] != 400 {
		t.Errorf("statuses = %v", h.statuses)
	}
	if h.errs != 1 {
		t.Errorf("errors = %d, want 1", h.errs)
	}
}

func TestListenAndServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- New().ListenAndServe(ctx, "127.0.0.1:0", func(a net.Addr) { addrCh <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-done:
		t.Fatalf("ListenAndServe: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
