package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewMetrics("test")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/cards/:cardID", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/metrics", m.Handler())

	for _, target := range []string{"/cards/1", "/cards/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/cards/:cardID",status="200"} 2`)
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, "test_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(ctx *gin.Context) { panic("nil deck") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error occured. Please contact the site administration."}`, w.Body.String())
}

func TestConfigCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantHeader string
	}{
		{name: "any origin", allowed: nil, origin: "http://client.test", wantHeader: "*"},
		{name: "listed origin", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", wantHeader: "http://localhost:3000"},
		{name: "unlisted origin", allowed: []string{"http://localhost:3000"}, origin: "http://client.test", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ConfigCORS(tt.allowed))
			r.GET("/cards/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/cards/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
