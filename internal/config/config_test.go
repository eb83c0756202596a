package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Endpoint)
	assert.Equal(t, 24*time.Hour, cfg.NPC.StateTTL())
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.True(t, cfg.Logging.ConsoleEnabled)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := `http:
  port: 9090
redis:
  endpoint: redis.internal:6380
  pool_size: 25
npc:
  state_ttl_hours: 48
logging:
  level: DEBUG
  console_enabled: true
  console_format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Endpoint)
	assert.Equal(t, 25, cfg.Redis.PoolSize)
	assert.Equal(t, 48*time.Hour, cfg.NPC.StateTTL())
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.ConsoleFormat)

	// Sections absent from the file keep their defaults.
	assert.Equal(t, 15, cfg.HTTP.ReadTimeoutSeconds)
}

func TestLoadConfig_ClusterEndpoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := `redis:
  cluster_endpoints:
    - redis-0.internal:6379
    - redis-1.internal:6379
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"redis-0.internal:6379", "redis-1.internal:6379"}, cfg.Redis.ClusterEndpoints)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not a map"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.HTTP.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.HTTP.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Redis.Endpoint = ""
	assert.Error(t, cfg.Validate())

	// Cluster endpoints stand in for the single endpoint.
	cfg = DefaultConfig()
	cfg.Redis.Endpoint = ""
	cfg.Redis.ClusterEndpoints = []string{"redis-0.internal:6379"}
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.NPC.StateTTLHours = 0
	assert.Error(t, cfg.Validate())
}
