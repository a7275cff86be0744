package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"

	"ragagent-api/internal/contextutil"
)

// captureDefaultLogger routes slog.Default into a buffer for the duration of the test.
func captureDefaultLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggerMiddleware(t *testing.T) {
	buf := captureDefaultLogger(t)

	var capturedCtx context.Context
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedCtx = r.Context()
		contextutil.LoggerFromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	h := middleware.RequestID(LoggerMiddleware(handler))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("LoggerMiddleware() status = %v, want %v", w.Code, http.StatusOK)
	}
	if capturedCtx == nil {
		t.Fatal("LoggerMiddleware() should capture context")
	}
	if contextutil.LoggerFromContext(capturedCtx) == slog.Default() {
		t.Error("LoggerMiddleware() should add a request logger to context")
	}

	out := buf.String()
	for _, want := range []string{"method=GET", "path=/test", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		shouldLog  bool
	}{
		{
			name:       "regular request",
			method:     http.MethodPost,
			path:       "/chat",
			statusCode: http.StatusOK,
			shouldLog:  true,
		},
		{
			name:       "health check skipped",
			method:     http.MethodGet,
			path:       "/health",
			statusCode: http.StatusOK,
			shouldLog:  false,
		},
		{
			name:       "non-200 health check logged",
			method:     http.MethodGet,
			path:       "/health",
			statusCode: http.StatusMethodNotAllowed,
			shouldLog:  true,
		},
		{
			name:       "server error logged",
			method:     http.MethodPost,
			path:       "/chat",
			statusCode: http.StatusInternalServerError,
			shouldLog:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureDefaultLogger(t)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})

			h := RequestLogger(handler)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.statusCode {
				t.Errorf("RequestLogger() status = %v, want %v", w.Code, tt.statusCode)
			}
			logged := strings.Contains(buf.String(), "request completed")
			if logged != tt.shouldLog {
				t.Errorf("RequestLogger() logged = %v, want %v (output %q)", logged, tt.shouldLog, buf.String())
			}
		})
	}
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("responseWriter.WriteHeader() statusCode = %v, want %v", rw.statusCode, http.StatusNotFound)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("responseWriter.WriteHeader() underlying status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestCORS(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := CORS([]string{"http://localhost:3000", "https://your-app.vercel.app"})(handler)

	tests := []struct {
		name         string
		method       string
		origin       string
		preflight    bool
		reqMethod    string
		wantOrigin   string
		wantCredsHdr string
	}{
		{
			name:         "preflight from allowed origin",
			method:       http.MethodOptions,
			origin:       "http://localhost:3000",
			preflight:    true,
			wantOrigin:   "http://localhost:3000",
			wantCredsHdr: "true",
		},
		{
			name:       "preflight for a method the API does not serve",
			method:     http.MethodOptions,
			origin:     "http://localhost:3000",
			preflight:  true,
			reqMethod:  http.MethodDelete,
			wantOrigin: "",
		},
		{
			name:         "request from allowed origin",
			method:       http.MethodPost,
			origin:       "https://your-app.vercel.app",
			wantOrigin:   "https://your-app.vercel.app",
			wantCredsHdr: "true",
		},
		{
			name:       "request from unknown origin",
			method:     http.MethodPost,
			origin:     "https://evil.example",
			wantOrigin: "",
		},
		{
			name:       "request without origin",
			method:     http.MethodPost,
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/chat", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				reqMethod := tt.reqMethod
				if reqMethod == "" {
					reqMethod = http.MethodPost
				}
				req.Header.Set("Access-Control-Request-Method", reqMethod)
				req.Header.Set("Access-Control-Request-Headers", "Content-Type")
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code >= 300 {
				t.Errorf("CORS() status = %v, want 2xx", w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if got := w.Header().Get("Access-Control-Allow-Credentials"); got != tt.wantCredsHdr {
				t.Errorf("Access-Control-Allow-Credentials = %q, want %q", got, tt.wantCredsHdr)
			}
		})
	}
}
