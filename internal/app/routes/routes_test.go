package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gpacalc/internal/app/controllers"
	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(middleware.CORS([]string{"*"}), middleware.Metrics())
	SetupRouter(r, controllers.NewGPAController(services.NewGPAService(zerolog.Nop())))
	SetupStatic(r, staticDir)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_HealthAndCalculate(t *testing.T) {
	r := newRouter(t, "")

	w := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var health dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.True(t, health.Success)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, health.Data)

	w = serve(r, http.MethodPost, "/api/calculate", `{"courses":[{"name":"A","credits":3,"score":91}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"gpa":4,"weightedAverage":91,"totalCredits":3}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_Preflight(t *testing.T) {
	r := newRouter(t, "")

	w := serve(r, http.MethodOptions, "/api/calculate", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRoutes_Metrics(t *testing.T) {
	r := newRouter(t, "")
	serve(r, http.MethodGet, "/health", "")

	w := serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gpacalc_http_requests_total")
}

func TestRoutes_Static(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>GPA</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))
	r := newRouter(t, dir)

	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>GPA</h1>")

	w = serve(r, http.MethodGet, "/app.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = serve(r, http.MethodGet, "/missing.css", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, http.MethodGet, "/../../etc/passwd", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_NotFoundWithoutStatic(t *testing.T) {
	r := newRouter(t, "")

	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RES_001")
}
