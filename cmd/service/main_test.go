package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"hub-oauth/internal/cache"
	"hub-oauth/internal/database"
	"hub-oauth/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = os.Exit
}

func setEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u@localhost/db")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "0")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("JWT_SECRET", "s")
}

func stubInfra(t *testing.T) {
	t.Helper()
	newPgxPool = func(context.Context, string) (database.DB, error) {
		return &database.FakeDB{}, nil
	}
	newRedisClient = func(string, string, int) (cache.Cache, error) {
		return &cache.FakeCache{}, nil
	}
	runMigrationsFn = func(string) error { return nil }
	startServer = func(*echo.Echo, string) error { return nil }
}

func TestRun(t *testing.T) {
	defer restoreGlobals()

	t.Run("missing DATABASE_URL", func(t *testing.T) {
		setEnv(t)
		t.Setenv("DATABASE_URL", "")
		require.ErrorContains(t, run(), "DATABASE_URL")
	})

	t.Run("missing REDIS_ADDR", func(t *testing.T) {
		setEnv(t)
		t.Setenv("REDIS_ADDR", "")
		require.ErrorContains(t, run(), "REDIS_ADDR")
	})

	t.Run("missing REDIS_DB", func(t *testing.T) {
		setEnv(t)
		t.Setenv("REDIS_DB", "")
		require.ErrorContains(t, run(), "REDIS_DB")
	})

	t.Run("invalid REDIS_DB", func(t *testing.T) {
		setEnv(t)
		t.Setenv("REDIS_DB", "zero")
		require.ErrorContains(t, run(), "REDIS_DB")
	})

	t.Run("invalid WORKER_COUNT", func(t *testing.T) {
		setEnv(t)
		t.Setenv("WORKER_COUNT", "-3")
		require.ErrorContains(t, run(), "WORKER_COUNT")
	})

	t.Run("database connect error", func(t *testing.T) {
		setEnv(t)
		stubInfra(t)
		newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("refused") }
		require.ErrorContains(t, run(), "database connect")
	})

	t.Run("redis connect error", func(t *testing.T) {
		setEnv(t)
		stubInfra(t)
		newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("refused") }
		require.ErrorContains(t, run(), "redis connect")
	})

	t.Run("migrations error", func(t *testing.T) {
		setEnv(t)
		stubInfra(t)
		runMigrationsFn = func(string) error { return errors.New("dirty") }
		require.ErrorContains(t, run(), "migrations")
	})

	t.Run("server error", func(t *testing.T) {
		setEnv(t)
		stubInfra(t)
		startServer = func(*echo.Echo, string) error { return errors.New("bind") }
		require.ErrorContains(t, run(), "bind")
	})

	t.Run("success", func(t *testing.T) {
		setEnv(t)
		t.Setenv("WORKER_COUNT", "2")
		t.Setenv("OAUTH_PREFIX", "/hub/oauth2")
		stubInfra(t)
		var addr string
		startServer = func(e *echo.Echo, a string) error {
			addr = a
			// The protocol endpoints must be mounted before the server starts.
			found := false
			for _, r := range e.Routes() {
				if r.Path == "/hub/oauth2/token" {
					found = true
				}
			}
			require.True(t, found)
			return nil
		}
		require.NoError(t, run())
		require.Equal(t, ":8080", addr)
	})
}

func TestMain_ExitOnError(t *testing.T) {
	defer restoreGlobals()
	t.Setenv("DATABASE_URL", "")

	var code int
	exitFunc = func(c int) { code = c }
	main()
	require.Equal(t, 1, code)
}
