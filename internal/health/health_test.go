package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/courtplan/internal/testutil"
	"github.com/gin-gonic/gin"
)

func TestChecker(t *testing.T) {
	ctx := context.Background()
	db, cleanupDB := testutil.SetupPostgresContainer(ctx, t)
	t.Cleanup(cleanupDB)
	rdb, cleanupRedis := testutil.SetupRedisContainer(ctx, t)
	t.Cleanup(cleanupRedis)

	status := NewChecker(db, rdb, "test").Check(ctx)
	if status.Status != StatusHealthy {
		t.Fatalf("status = %+v, want healthy", status)
	}
	if status.Checks["redis"].Status != StatusHealthy || status.Checks["postgres"].Status != StatusHealthy {
		t.Errorf("checks = %+v", status.Checks)
	}

	if err := rdb.Close(); err != nil {
		t.Fatalf("close redis: %v", err)
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewChecker(db, rdb, "test").Handler())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d with closed redis, want 503", w.Code)
	}
}

func TestCheckerWithoutRedis(t *testing.T) {
	ctx := context.Background()
	db, cleanup := testutil.SetupPostgresContainer(ctx, t)
	t.Cleanup(cleanup)

	status := NewChecker(db, nil, "test").Check(ctx)
	if status.Status != StatusHealthy || status.Checks["redis"].Status != StatusDisabled {
		t.Errorf("status = %+v, want healthy with redis disabled", status)
	}
}
