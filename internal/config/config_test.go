package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("", envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.Production())
	assert.Equal(t, DefaultSlowRequest, cfg.SlowRequest())
	assert.Equal(t, DefaultSlowQuery, cfg.SlowQuery())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coala.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9000"
apiBaseUrl: https://api.example.com
rateLimit: 60
trustedOrigins: ["coala.example.com"]
slowRequestMs: 500
`), 0o600))

	cfg, err := load(path, envOf(map[string]string{
		"COALA_ADDR":            ":9100",
		"COALA_SLOW_QUERY_MS":   "5",
		"COALA_TRUSTED_ORIGINS": "a.example.com, b.example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Addr)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 60, cfg.RatePerMinute)
	assert.Equal(t, 500*time.Millisecond, cfg.SlowRequest())
	assert.Equal(t, 5*time.Millisecond, cfg.SlowQuery())
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, cfg.TrustedOrigins)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"unknown env", map[string]string{"COALA_ENV": "staging"}, ErrInvalidEnv},
		{"zero rate", map[string]string{"COALA_RATE_LIMIT": "0"}, ErrInvalidRateLimit},
		{"short key", map[string]string{"COALA_CSRF_KEY": "abcd"}, ErrInvalidCSRFKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load("", envOf(tc.env))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := load("", envOf(map[string]string{"COALA_RATE_LIMIT": "many"}))
	assert.ErrorContains(t, err, "COALA_RATE_LIMIT")

	_, err = load(filepath.Join(t.TempDir(), "missing.yaml"), envOf(nil))
	assert.Error(t, err)
}

func TestLoad_ProductionKey(t *testing.T) {
	cfg, err := load("", envOf(map[string]string{
		"COALA_ENV":      EnvProduction,
		"COALA_CSRF_KEY": strings.Repeat("0f", 32),
	}))
	require.NoError(t, err)
	assert.True(t, cfg.Production())
}
