package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlain/campus/internal/bootstrap"
)

func TestNewServer_MemoryStores(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("MONGO_DRIVER", "memory")
	t.Setenv("SERVER_PORT", "0")
	ctx := context.Background()

	srv, err := NewServer(ctx, bootstrap.CoursesService, filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	assert.NoError(t, srv.Shutdown(ctx))
}

func TestNewServer_BadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := NewServer(context.Background(), bootstrap.CoursesService, filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
