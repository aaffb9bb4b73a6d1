package db

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/config"
)

func TestOpenRegistersInstrumentationPlugins(t *testing.T) {
	cfg := config.Config{
		DBType: "sqlite",
		DBName: fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}

	conn, err := Open(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	_, hasTracing := conn.Config.Plugins["otelgorm"]
	assert.True(t, hasTracing, "tracing plugin not registered")

	hasPoolStats := false
	for name := range conn.Config.Plugins {
		if strings.Contains(name, "prometheus") {
			hasPoolStats = true
		}
	}
	assert.True(t, hasPoolStats, "pool stats plugin not registered")

	// Instrumented callbacks must not break plain queries.
	var one int
	assert.NoError(t, conn.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestDialectRejectsUnknownDriver(t *testing.T) {
	_, err := Dialect(config.Config{DBType: "oracle"})
	assert.Error(t, err)
}
