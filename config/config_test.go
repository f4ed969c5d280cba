package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SYNC_SCHEDULE", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("TRUSTED_PROXIES", "")
	for _, k := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "CONTACT_RATE_PER_MIN"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://postgres:@localhost:5432/portfolio?sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 5, cfg.Contact.RatePerMin)
	assert.Empty(t, cfg.Server.TrustedProxies)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/site")
	t.Setenv("CORS_ORIGINS", "https://studio.dev, https://www.studio.dev")
	t.Setenv("CONTACT_RATE_PER_MIN", "not-a-number")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/site", cfg.Database.DSN())
	assert.Equal(t, []string{"https://studio.dev", "https://www.studio.dev"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 5, cfg.Contact.RatePerMin)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Server.TrustedProxies)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Driver: "postgres", Host: "localhost"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "mysql"
		assert.Error(t, cfg.Validate())
	})

	t.Run("schedule without drive credentials", func(t *testing.T) {
		cfg := base()
		cfg.Drive.Schedule = "0 0 3 * * *"
		assert.Error(t, cfg.Validate())

		cfg.Drive.APIKey = "key"
		cfg.Drive.FolderID = "folder"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad trusted proxy", func(t *testing.T) {
		cfg := base()
		cfg.Server.TrustedProxies = []string{"10.0.0.0/8", "load-balancer"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})
}
