package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andrewpaige1/typedeck-api/config"
	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/handlers"
	"github.com/andrewpaige1/typedeck-api/middleware"
	"github.com/andrewpaige1/typedeck-api/store"
)

func TestNewHTTPHandler(t *testing.T) {
	cfg := &config.Config{
		CORS: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
		DB:   config.DB{Driver: "sqlite", URL: "file:serve_test?mode=memory&cache=shared", LogLevel: "silent"},
	}
	db, err := config.OpenDatabase(cfg.DB)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	h := handlers.NewDBHandler(store.New(db), flashcards.NewGenerator(nil), zap.NewNop())
	srv := httptest.NewServer(newHTTPHandler(cfg, zap.NewNop(), h))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/datatypes", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/datatypes", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example")
	resp2, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}
