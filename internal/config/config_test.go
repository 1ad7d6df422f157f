package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFallsBackOnUnparsableValues(t *testing.T) {
	t.Setenv("POOL_RESOLVE_TIMEOUT", "soon")
	t.Setenv("POOL_RESOLVE_CONCURRENCY", "many")
	t.Setenv("ADMIN_OSU_IDS", "")

	cfg := Load()

	assert.Empty(t, cfg.Auth.AdminOsuIds)
	assert.Equal(t, 10*time.Second, cfg.Pool.ResolveTimeout)
	assert.Equal(t, 4, cfg.Pool.ResolveConcurrency)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POOL_RESOLVE_TIMEOUT", "3s")
	t.Setenv("POOL_RESOLVE_CONCURRENCY", "8")
	t.Setenv("ADMIN_OSU_IDS", "2, 124493,not-a-number")
	t.Setenv("JWT_TTL", "1h")

	cfg := Load()

	assert.Equal(t, 3*time.Second, cfg.Pool.ResolveTimeout)
	assert.Equal(t, 8, cfg.Pool.ResolveConcurrency)
	assert.Equal(t, []int64{2, 124493}, cfg.Auth.AdminOsuIds)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}
