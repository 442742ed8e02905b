package observability

import (
	"context"
	"testing"
)

func TestInitMetricsDisabled(t *testing.T) {
	shutdown, err := InitMetrics(context.Background(), "courtplan", "test", "")
	if err != nil {
		t.Fatalf("InitMetrics() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}
