package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"nftstake/x/nftstake/types"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(viper.New(), newFlags(t))
	require.NoError(t, err)
	require.Equal(t, Config{
		Node:        defaultNode,
		Listen:      defaultListen,
		LogLevel:    defaultLogLevel,
		ReadTimeout: defaultReadLimit,
	}, cfg)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "gateway.yaml")
	require.NoError(t, os.WriteFile(file, []byte("listen: 0.0.0.0:9000\nlog-level: debug\nheight: 7\n"), 0o600))

	t.Setenv("NFTSTAKE_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(viper.New(), newFlags(t, "--config", file, "--node", "http://node:26657"))
	require.NoError(t, err)
	require.Equal(t, "http://node:26657", cfg.Node)
	require.Equal(t, "0.0.0.0:9000", cfg.Listen)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, int64(7), cfg.Height)
}

func TestConfigValidate(t *testing.T) {
	base := Config{Node: defaultNode, Listen: defaultListen, LogLevel: "info", ReadTimeout: time.Second}
	require.NoError(t, base.Validate())

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no scheme", func(c *Config) { c.Node = "localhost" }},
		{"empty listen", func(c *Config) { c.Listen = "" }},
		{"zero timeout", func(c *Config) { c.ReadTimeout = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

type emptyReader struct{}

func (emptyReader) Params() (types.Params, error)   { return types.DefaultParams(), nil }
func (emptyReader) Gate() (types.AccessGate, error) { return types.DefaultAccessGate(), nil }
func (emptyReader) Staked(o, a string) (types.StakeInfo, error) {
	return types.StakeInfo{Owner: o, AssetID: a}, nil
}
func (emptyReader) StakedFungible(string, uint64) ([]types.FungibleStakeEntry, error) {
	return nil, nil
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(emptyReader{})

	for _, path := range []string{"/healthz", "/nftstake/v1/params", "/nftstake/v1/gate"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
