package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SUGGEST_DEBOUNCE", "")
	t.Setenv("DB_URL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.postalpincode.in", cfg.PincodeAPIURL)
	assert.Equal(t, "https://api.teleport.org", cfg.CityAPIURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce)
	assert.Equal(t, 150*time.Millisecond, cfg.BlurDelay)
	assert.Equal(t, 1200*time.Millisecond, cfg.ResetDelay)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SUGGEST_DEBOUNCE", "50ms")
	t.Setenv("LOOKUP_TIMEOUT", "2000")
	t.Setenv("CACHE_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce)
	assert.Equal(t, 2*time.Second, cfg.LookupTimeout)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}
