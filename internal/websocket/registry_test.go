package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRegistrySingleton(t *testing.T) {
	assert.Same(t, GetRegistry(), GetRegistry())
}

func TestBroadcastWithoutHandler(t *testing.T) {
	r := &Registry{}
	assert.NotPanics(t, func() { r.BroadcastCPU(map[string]int{"a": 1}) })
}

func TestBroadcastReachesClients(t *testing.T) {
	handler := NewHandler()
	r := &Registry{}
	r.RegisterCPUHandler(handler)
	require.Same(t, handler, r.GetCPUHandler())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handler.ServeHTTP(w, req, map[string]string{"hello": "cpu"})
	}))
	defer srv.Close()

	conn, _, err := gws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	var greeting map[string]string
	require.NoError(t, conn.ReadJSON(&greeting))
	assert.Equal(t, "cpu", greeting["hello"])

	require.Eventually(t, func() bool { return handler.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	r.BroadcastCPU(map[string]float64{"aggregate": 12.5})

	var msg map[string]float64
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, 12.5, msg["aggregate"])
}

func TestClientRemovedOnDisconnect(t *testing.T) {
	handler := NewHandler()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handler.ServeHTTP(w, req, nil)
	}))
	defer srv.Close()

	conn, _, err := gws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return handler.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return handler.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
