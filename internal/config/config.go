// Package config loads server configuration from YAML with sane defaults.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dungeonforge/dungeonforge-api/internal/errors"
	"github.com/dungeonforge/dungeonforge-api/internal/logger"
)

// ServerConfig holds server-wide configuration settings.
type ServerConfig struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Redis   RedisConfig   `yaml:"redis"`
	NPC     NPCConfig     `yaml:"npc"`
	Logging logger.Config `yaml:"logging"`
}

// HTTPConfig holds the listener settings.
type HTTPConfig struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port"`

	// ReadTimeoutSeconds bounds how long a request read may take.
	ReadTimeoutSeconds int `yaml:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds how long a response write may take.
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	// Endpoint is the host:port of the Redis instance.
	Endpoint string `yaml:"endpoint"`

	// ClusterEndpoints, when set, switches the server to cluster mode
	// and takes precedence over Endpoint.
	ClusterEndpoints []string `yaml:"cluster_endpoints"`

	PoolSize     int  `yaml:"pool_size"`
	MinIdleConns int  `yaml:"min_idle_conns"`
	UseTLS       bool `yaml:"use_tls"`
}

// NPCConfig holds NPC subsystem settings.
type NPCConfig struct {
	// StateTTLHours is how long idle NPC conversational state lives.
	StateTTLHours int `yaml:"state_ttl_hours"`
}

// StateTTL returns the configured NPC state lifetime as a duration.
func (c *NPCConfig) StateTTL() time.Duration {
	return time.Duration(c.StateTTLHours) * time.Hour
}

// DefaultConfig returns a ServerConfig with working defaults.
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		HTTP: HTTPConfig{
			Port:                8080,
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 15,
		},
		Redis: RedisConfig{
			Endpoint:     "localhost:6379",
			PoolSize:     10,
			MinIdleConns: 2,
		},
		NPC: NPCConfig{
			StateTTLHours: 24,
		},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig loads server configuration from a YAML file. A missing file
// yields the defaults; a malformed file is an error.
func LoadConfig(path string) (*ServerConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, errors.Wrapf(err, "failed to read config file %q", path)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *ServerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		vb.InvalidField("http.port", "must be between 1 and 65535")
	}
	if c.Redis.Endpoint == "" && len(c.Redis.ClusterEndpoints) == 0 {
		vb.RequiredField("redis.endpoint")
	}
	if c.NPC.StateTTLHours <= 0 {
		vb.InvalidField("npc.state_ttl_hours", "must be positive")
	}

	return vb.Build()
}
