package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecker(t *testing.T) {
	t.Run("all checks healthy", func(t *testing.T) {
		hc := NewHealthChecker("1.0.0", time.Second)
		hc.Register(CheckerFunc{
			CheckName: "always-ok",
			CheckFunc: func(ctx context.Context) error { return nil },
		})

		report := hc.Check(context.Background())

		assert.Equal(t, StatusHealthy, report.Status)
		assert.Equal(t, "1.0.0", report.Version)
		require.Contains(t, report.Checks, "always-ok")
		assert.Equal(t, StatusHealthy, report.Checks["always-ok"].Status)
	})

	t.Run("one failing check marks the report unhealthy", func(t *testing.T) {
		hc := NewHealthChecker("1.0.0", time.Second)
		hc.Register(CheckerFunc{
			CheckName: "ok",
			CheckFunc: func(ctx context.Context) error { return nil },
		})
		hc.Register(CheckerFunc{
			CheckName: "broken",
			CheckFunc: func(ctx context.Context) error { return fmt.Errorf("backend down") },
		})

		report := hc.Check(context.Background())

		assert.Equal(t, StatusUnhealthy, report.Status)
		assert.Equal(t, "backend down", report.Checks["broken"].Message)
	})

	t.Run("unregister removes a check", func(t *testing.T) {
		hc := NewHealthChecker("1.0.0", time.Second)
		hc.Register(CheckerFunc{
			CheckName: "temp",
			CheckFunc: func(ctx context.Context) error { return nil },
		})
		hc.Unregister("temp")

		report := hc.Check(context.Background())
		assert.NotContains(t, report.Checks, "temp")
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy returns 200", func(t *testing.T) {
		hc := NewHealthChecker("1.0.0", time.Second)
		hc.Register(CheckerFunc{
			CheckName: "ok",
			CheckFunc: func(ctx context.Context) error { return nil },
		})

		w := httptest.NewRecorder()
		hc.Handler()(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var report Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, StatusHealthy, report.Status)
	})

	t.Run("unhealthy returns 503", func(t *testing.T) {
		hc := NewHealthChecker("1.0.0", time.Second)
		hc.Register(CheckerFunc{
			CheckName: "broken",
			CheckFunc: func(ctx context.Context) error { return fmt.Errorf("down") },
		})

		w := httptest.NewRecorder()
		hc.Handler()(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
