package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	var seen string
	r.GET("/ping", func(c *ginext.Context) {
		seen = logger.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := serve(r, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-42", seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)))
	r.GET("/fail", func(c *ginext.Context) {
		c.Set("error", "booking not found")
		c.JSON(http.StatusNotFound, ginext.H{"error": "booking not found"})
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/panic", func(*ginext.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRecovery_EchoesRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))
	r.GET("/panic", func(*ginext.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := serve(r, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error","request_id":"req-42"}`, w.Body.String())
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
		status int
	}{
		{"valid", "s3cret", "s3cret", http.StatusOK},
		{"wrong", "s3cret", "guess", http.StatusUnauthorized},
		{"missing", "s3cret", "", http.StatusUnauthorized},
		{"disabled", "", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ginext.New("test")
			admin := r.Group("/admin", AdminAuth(tt.token))
			admin.GET("/jobs", func(c *ginext.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
			if tt.header != "" {
				req.Header.Set(AdminTokenHeader, tt.header)
			}
			w := serve(r, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS([]string{"https://natuasili.com"}))
	r.GET("/api/experiences", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/experiences", nil)
	req.Header.Set("Origin", "https://natuasili.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-Session-ID")
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://natuasili.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/experiences", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = serve(r, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
