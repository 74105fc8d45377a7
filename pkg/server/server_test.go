package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckmock/deckmockd/pkg/config"
	"github.com/deckmock/deckmockd/pkg/deck"
)

func TestServerLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.Port = 0 // random free port

	srv := New(cfg)
	require.NoError(t, srv.Start())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	}()

	assert.True(t, srv.IsRunning())
	require.NotEmpty(t, srv.Addr())
	_, port, err := net.SplitHostPort(srv.Addr())
	require.NoError(t, err)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%s/api/decks", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/anki/Spanish.csv")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	assert.False(t, srv.IsRunning())
	assert.Equal(t, 0, srv.Uptime())
}

func TestServerDoubleStart(t *testing.T) {
	cfg := config.Default()
	cfg.Port = 0

	srv := New(cfg)
	require.NoError(t, srv.Start())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	}()

	assert.Error(t, srv.Start())
}

func TestServerStopWithoutStart(t *testing.T) {
	srv := New(config.Default())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, srv.Stop(ctx))
}

func TestServerWithStore(t *testing.T) {
	store := deck.NewStore([]deck.Seed{{Path: "/anki/Solo.csv", Content: "Front,Back\r\n"}})
	srv := New(config.Default(), WithStore(store))

	assert.Same(t, store, srv.Store())
	assert.Equal(t, 1, srv.Store().Count())
}
