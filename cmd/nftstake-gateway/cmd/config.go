package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	NodeKey          = "node"
	ListenKey        = "listen"
	ConfigKey        = "config"
	LogLevelKey      = "log-level"
	ReadTimeoutKey   = "read-timeout"
	HeightKey        = "height"
	EnvPrefix        = "NFTSTAKE"
	defaultNode      = "tcp://localhost:26657"
	defaultListen    = "127.0.0.1:1318"
	defaultLogLevel  = "info"
	defaultReadLimit = 10 * time.Second
)

// Config is the gateway's runtime configuration.
type Config struct {
	Node        string
	Listen      string
	LogLevel    string
	ReadTimeout time.Duration
	// Height pins queries to a block height. Zero means latest.
	Height int64
}

func AddFlags(flags *pflag.FlagSet) {
	flags.String(NodeKey, defaultNode, "CometBFT RPC endpoint of the node to query")
	flags.String(ListenKey, defaultListen, "Address the REST gateway listens on")
	flags.String(ConfigKey, "", "Optional config file (toml, yaml or json)")
	flags.String(LogLevelKey, defaultLogLevel, "Log level (debug, info, warn, error)")
	flags.Duration(ReadTimeoutKey, defaultReadLimit, "HTTP read header timeout")
	flags.Int64(HeightKey, 0, "Query state at this height instead of the latest block")
}

// LoadConfig resolves the configuration from flags, NFTSTAKE_* environment
// variables and the optional config file, in that order of precedence.
func LoadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(ConfigKey); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		Node:        v.GetString(NodeKey),
		Listen:      v.GetString(ListenKey),
		LogLevel:    v.GetString(LogLevelKey),
		ReadTimeout: v.GetDuration(ReadTimeoutKey),
		Height:      v.GetInt64(HeightKey),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	u, err := url.Parse(c.Node)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid node address %q", c.Node)
	}
	if c.Listen == "" {
		return errors.New("listen address required")
	}
	if c.ReadTimeout <= 0 {
		return errors.New("read timeout must be positive")
	}
	if c.Height < 0 {
		return errors.New("height must not be negative")
	}
	return nil
}
