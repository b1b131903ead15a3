package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jankenoboe/jankenoboe/internal/bootstrap"
	"github.com/jankenoboe/jankenoboe/internal/testutil"
)

func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

func TestLoadConfig(t *testing.T) {
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Learning.MaxLevel)
}

func TestRun_ConfigError(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	setConfigFile(t, cfgPath)

	err := run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loadConfig() >")
}

func TestNewServer(t *testing.T) {
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))
	cfg, err := loadConfig()
	require.NoError(t, err)

	app := bootstrap.New()
	srv, err := newServer(context.Background(), app, cfg)
	require.NoError(t, err)
	assert.Equal(t, ":8080", srv.Addr)

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/learning/due", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Count)

	// Shutting the app down closes the database.
	err = app.Run(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
}
