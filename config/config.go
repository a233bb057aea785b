package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all application configurations.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"` // sqlite, postgres or mysql
		Path     string `mapstructure:"path"`   // sqlite file path
		URL      string `mapstructure:"url"`    // full DSN, overrides host/port fields
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Kafka struct {
		Enabled bool     `mapstructure:"enabled"`
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	Seed bool `mapstructure:"seed"`
}

// LoadConfig reads configuration from config/config.yml, falling back to
// defaults when the file is absent. DATABASE_URL in the environment switches
// the store from the local SQLite file to the managed PostgreSQL instance.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", ":8000")
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "concesionario.db")
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "concesionario")
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"127.0.0.1:9092"})
	viper.SetDefault("kafka.topic", "order-events")
	viper.SetDefault("seed", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Deployment environments provide a single connection string instead of
	// editing the config file.
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.Driver = "postgres"
		cfg.Database.URL = url
	}

	return &cfg, nil
}
