package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	DisableGRPCWeb bool
}

type DatabaseConfig struct {
	URL             string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads the service configuration from the environment. DATABASE_URL
// is the only required variable; everything else falls back to the
// defaults documented in the external interfaces section of the spec.
func Load() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetDefault("HOST", "[::1]")
	viper.SetDefault("PORT", 50051)
	viper.SetDefault("DISABLE_GRPC_WEB", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 3600)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 300)

	dbURL := viper.GetString("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is not set")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           viper.GetString("HOST"),
			Port:           viper.GetInt("PORT"),
			DisableGRPCWeb: viper.GetBool("DISABLE_GRPC_WEB"),
		},
		Database: DatabaseConfig{
			URL:             dbURL,
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.URL
}
