package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the server and the client.
type Config struct {
	// ServerAddress is the gRPC address the server listens on and clients dial.
	ServerAddress string `yaml:"server_addr"`
	// HTTPAddress is the listen address of the metrics and health endpoints.
	// Empty disables the HTTP listener.
	HTTPAddress string `yaml:"http_addr,omitempty"`
	// Timeout bounds store pings and health checks.
	Timeout time.Duration `yaml:"timeout"`
	// RPCTimeout bounds one client call, the server's alert fan-out included.
	// It must not be shorter than Dispatch.SendTimeout.
	RPCTimeout time.Duration `yaml:"rpc_timeout"`
	// LogLevel is parsed with logger.ParseLogLevel.
	LogLevel string `yaml:"log_level,omitempty"`
	// Token is the session token the client presents to the server.
	Token string `yaml:"token,omitempty"`

	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Dispatch DispatchConfig `yaml:"dispatch"`
}

// DatabaseConfig configures the Postgres user and contact stores.
// An empty DSN switches the server to in-memory stores.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn,omitempty"`
	MaxOpenConns    int           `yaml:"max_open_conns,omitempty"`
	MaxIdleConns    int           `yaml:"max_idle_conns,omitempty"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime,omitempty"`
}

// RedisConfig configures the session store used to authenticate callers.
type RedisConfig struct {
	URL           string `yaml:"url,omitempty"`
	SessionPrefix string `yaml:"session_prefix,omitempty"`
	PoolSize      int    `yaml:"pool_size,omitempty"`
}

// TwilioConfig holds the SMS channel credentials.
// When all fields are empty the server logs alerts instead of sending them.
type TwilioConfig struct {
	AccountSID string `yaml:"account_sid,omitempty"`
	AuthToken  string `yaml:"auth_token,omitempty"`
	From       string `yaml:"from,omitempty"`
}

// Enabled reports whether Twilio credentials are configured.
func (t *TwilioConfig) Enabled() bool {
	return t.AccountSID != "" || t.AuthToken != "" || t.From != ""
}

// DispatchConfig bounds the alert fan-out.
type DispatchConfig struct {
	// FanOutLimit caps concurrent sends of one alert.
	FanOutLimit int `yaml:"fan_out_limit"`
	// SendTimeout bounds a single send; exceeding it fails that contact only.
	SendTimeout time.Duration `yaml:"send_timeout"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "panic-button-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultRPCTimeout is the default client call timeout.
	// It is raised to SendTimeout plus DefaultTimeout when that is longer.
	DefaultRPCTimeout = 30 * time.Second

	// DefaultFanOutLimit is the default number of concurrent sends per alert.
	DefaultFanOutLimit = 8

	// DefaultSendTimeout is the default per-contact send timeout.
	DefaultSendTimeout = 10 * time.Second

	// DefaultSessionPrefix prefixes session keys in Redis.
	DefaultSessionPrefix = "session:"

	// DefaultMaxOpenConns caps the Postgres pool when not configured.
	DefaultMaxOpenConns = 10

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errIncompleteTwilio is returned when only part of the Twilio credentials is set.
	errIncompleteTwilio = errors.New("twilio account_sid, auth_token and from must be set together")
	// errNegativeFanOut is returned for a negative fan-out limit.
	errNegativeFanOut = errors.New("dispatch fan_out_limit must not be negative")
	// errRPCTimeoutTooShort is returned when a client call could not outlast a single send.
	errRPCTimeoutTooShort = errors.New("rpc_timeout must not be shorter than dispatch send_timeout")
)

// Load reads configuration from the provided path, expands environment
// references and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(contents))), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Settings may carry secrets.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.HTTPAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", settings.HTTPAddress); err != nil {
			return fmt.Errorf("invalid http socket: %w", err)
		}
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.Database.MaxOpenConns <= 0 {
		settings.Database.MaxOpenConns = DefaultMaxOpenConns
	}

	if settings.Redis.SessionPrefix == "" {
		settings.Redis.SessionPrefix = DefaultSessionPrefix
	}

	if settings.Twilio.Enabled() &&
		(settings.Twilio.AccountSID == "" || settings.Twilio.AuthToken == "" || settings.Twilio.From == "") {
		return errIncompleteTwilio
	}

	switch {
	case settings.Dispatch.FanOutLimit < 0:
		return errNegativeFanOut
	case settings.Dispatch.FanOutLimit == 0:
		settings.Dispatch.FanOutLimit = DefaultFanOutLimit
	}

	if settings.Dispatch.SendTimeout <= 0 {
		settings.Dispatch.SendTimeout = DefaultSendTimeout
	}

	switch {
	case settings.RPCTimeout <= 0:
		settings.RPCTimeout = max(DefaultRPCTimeout, settings.Dispatch.SendTimeout+DefaultTimeout)
	case settings.RPCTimeout < settings.Dispatch.SendTimeout:
		return fmt.Errorf("%w: %s < %s", errRPCTimeoutTooShort, settings.RPCTimeout, settings.Dispatch.SendTimeout)
	}

	return nil
}
