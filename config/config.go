package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	Token TokenConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	// URL is the single connection string configuring the relational backend.
	URL string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type TokenConfig struct {
	Secret string
	Expiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// No .env file is fine; everything can come from the process env.
		logrus.Warnf("No .env file loaded: %v", err)
	}

	tokenExpiry, err := time.ParseDuration(viper.GetString("TOKEN_EXPIRY"))
	if err != nil {
		tokenExpiry = 24 * time.Hour
	}

	port := viper.GetString("APP_PORT")
	if port == "" {
		port = "5000"
	}

	config := &Config{
		App: AppConfig{
			Port: port,
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			URL: viper.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Token: TokenConfig{
			Secret: viper.GetString("TOKEN_SECRET"),
			Expiry: tokenExpiry,
		},
	}

	return config, nil
}
