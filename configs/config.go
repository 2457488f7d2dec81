package configs

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	HTTP struct {
		Port           string   `mapstructure:"port"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"http"`
	JWT struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"jwt"`
}

// Load reads configs/config.yaml if present, then lets environment
// variables override individual keys. DATABASE_URL and JWT_SECRET are
// required one way or the other.
func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("http.port", "3000")
	viper.SetDefault("http.allowed_origins", []string{"http://localhost:5173"})

	viper.AutomaticEnv()
	_ = viper.BindEnv("db.dsn", "DATABASE_URL")
	_ = viper.BindEnv("http.port", "PORT")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.DB.DSN == "" {
		return nil, errors.New("db.dsn (or DATABASE_URL) is not set")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret (or JWT_SECRET) is not set")
	}

	return &cfg, nil
}
