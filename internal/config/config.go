package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Redis    Redis

	JWTSecret      string
	TokenTTLHours  int
	GinMode        string
	SeedSampleData bool
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8001")
	viper.SetDefault("DB_DRIVER", "mysql")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_USER", "innovation")
	viper.SetDefault("DB_PASSWORD", "innovation")
	viper.SetDefault("DB_NAME", "campus_innovation")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("JWT_SECRET", "default-secret-key-change-me")
	viper.SetDefault("TOKEN_TTL_HOURS", 168)
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("SEED_SAMPLE_DATA", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("No config file found, using environment and defaults")
	}

	cfg := &Config{
		JWTSecret:      viper.GetString("JWT_SECRET"),
		TokenTTLHours:  viper.GetInt("TOKEN_TTL_HOURS"),
		GinMode:        viper.GetString("GIN_MODE"),
		SeedSampleData: viper.GetBool("SEED_SAMPLE_DATA"),
	}
	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.Database.Driver = viper.GetString("DB_DRIVER")
	cfg.Database.Host = viper.GetString("DB_HOST")
	cfg.Database.Port = viper.GetString("DB_PORT")
	cfg.Database.User = viper.GetString("DB_USER")
	cfg.Database.Password = viper.GetString("DB_PASSWORD")
	cfg.Database.Name = viper.GetString("DB_NAME")
	cfg.Redis.Host = viper.GetString("REDIS_HOST")
	cfg.Redis.Port = viper.GetString("REDIS_PORT")
	cfg.Redis.Password = viper.GetString("REDIS_PASSWORD")

	return cfg, nil
}
