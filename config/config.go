package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	Secret string
}

// NewConfig loads configuration from a .env file and the environment.
// Database settings and the JWT secret are mandatory: there is no
// fallback, a missing value aborts startup.
func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")

	if missing := missingKeys(&config); len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	log.Info().
		Str("server_port", config.Server.Port).
		Str("database_host", config.Database.Host).
		Str("database_name", config.Database.Name).
		Msg("Config loaded")
	return &config, nil
}

func missingKeys(c *Config) []string {
	required := []struct {
		key   string
		value string
	}{
		{"DATABASE_HOST", c.Database.Host},
		{"DATABASE_PORT", c.Database.Port},
		{"DATABASE_USER", c.Database.User},
		{"DATABASE_PASSWORD", c.Database.Password},
		{"DATABASE_NAME", c.Database.Name},
		{"JWT_SECRET", c.JWT.Secret},
	}
	var missing []string
	for _, entry := range required {
		if entry.value == "" {
			missing = append(missing, entry.key)
		}
	}
	return missing
}
