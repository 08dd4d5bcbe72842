package router

import (
	"PowerManager/internal/monitoring/cpu"
	"PowerManager/internal/pkg/config"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct{ usage []float64 }

func (s fixedSource) PerCore() ([]float64, error) {
	out := make([]float64, len(s.usage))
	copy(out, s.usage)
	return out, nil
}

func newTestRouter(t *testing.T, cfg *config.Config) (*Router, *cpu.Monitor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	monitor := cpu.NewMonitorWith(cpu.NewSamplerWithSource(fixedSource{usage: []float64{25, 75}}), nil)
	monitor.CheckCPU()

	return New(cfg, monitor).Initialize(), monitor
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, config.GetDefaultConfig())

	w := get(r, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	w = get(r, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PowerManager")
}

func TestCPUUsageEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, config.GetDefaultConfig())

	w := get(r, "/api/cpu", "")
	require.Equal(t, http.StatusOK, w.Code)

	var snap cpu.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, []float64{25, 75}, snap.Cores)
	assert.InDelta(t, 50.0, snap.Aggregate, 1e-9)
	assert.Equal(t, []string{"Aggregate CPU usage: 50.00%", "CPU 1: 25.00%", "CPU 2: 75.00%"}, snap.Lines)
}

func TestCPULinesEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, config.GetDefaultConfig())

	w := get(r, "/api/cpu/lines", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"aggregate":"Aggregate CPU usage: 50.00%","cores":["CPU 1: 25.00%","CPU 2: 75.00%"]}`, w.Body.String())
}

func TestNotFound(t *testing.T) {
	r, _ := newTestRouter(t, config.GetDefaultConfig())

	w := get(r, "/api/memory", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func authConfig() *config.Config {
	cfg := config.GetDefaultConfig()
	cfg.API.Auth.Enabled = true
	cfg.API.Auth.JWTSecret = "test-secret"
	cfg.Agent.Auth.User = "panel"
	cfg.Agent.Auth.Pass = "s3cret"
	return cfg
}

func login(t *testing.T, r http.Handler, user, pass string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": user, "password": pass})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r, _ := newTestRouter(t, authConfig())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/cpu", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/cpu", "garbage").Code)
	assert.Equal(t, http.StatusOK, get(r, "/health", "").Code, "health stays public")
}

func TestLoginAndAccess(t *testing.T) {
	r, _ := newTestRouter(t, authConfig())

	w := login(t, r, "panel", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = login(t, r, "panel", "s3cret")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	assert.Equal(t, http.StatusOK, get(r, "/api/cpu", resp.Token).Code)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t, authConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginDisabledWithoutAuth(t *testing.T) {
	r, _ := newTestRouter(t, config.GetDefaultConfig())

	w := login(t, r, "panel", "s3cret")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebSocketSendsCurrentSnapshot(t *testing.T) {
	r, _ := newTestRouter(t, config.GetDefaultConfig())
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/cpu"
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var snap cpu.Snapshot
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, []float64{25, 75}, snap.Cores)
}

func TestBuilderAddress(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 9099

	monitor := cpu.NewMonitorWith(cpu.NewSamplerWithSource(fixedSource{}), nil)
	b := NewBuilder(cfg, monitor).WithAllRoutes()
	assert.Equal(t, "127.0.0.1:9099", b.Address())
	assert.NotNil(t, b.GetRouter().Engine())
}
