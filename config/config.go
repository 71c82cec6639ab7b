package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisScheduleDB  int    `mapstructure:"REDIS_SCHEDULE_DB"`
	RedisNameDB      int    `mapstructure:"REDIS_NAME_DB"`
	RedisWarmQueueDB int    `mapstructure:"REDIS_WARM_QUEUE_DB"`

	// Upstream scheduling (PIMS) API.
	PimsBaseURL string `mapstructure:"PIMS_BASE_URL"`
	PimsAPIKey  string `mapstructure:"PIMS_API_KEY"`

	// Upstream routing API.
	RoutingBaseURL string `mapstructure:"ROUTING_BASE_URL"`
	RoutingAPIKey  string `mapstructure:"ROUTING_API_KEY"`

	// Timeline policy knobs.
	// When TIMELINE_DEFAULT_WINDOW is true, a day with no declared schedule
	// and no events resolves to the default window below instead of "off".
	TimelineDefaultWindow bool   `mapstructure:"TIMELINE_DEFAULT_WINDOW"`
	TimelineDefaultStart  string `mapstructure:"TIMELINE_DEFAULT_START"`
	TimelineDefaultEnd    string `mapstructure:"TIMELINE_DEFAULT_END"`
	TimelineCacheTTLSec   int    `mapstructure:"TIMELINE_CACHE_TTL_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SCHEDULE_DB", 0)
	viper.SetDefault("REDIS_NAME_DB", 1)
	viper.SetDefault("REDIS_WARM_QUEUE_DB", 2)
	viper.SetDefault("PIMS_BASE_URL", "http://localhost:9100")
	viper.SetDefault("PIMS_API_KEY", "")
	viper.SetDefault("ROUTING_BASE_URL", "http://localhost:9200")
	viper.SetDefault("ROUTING_API_KEY", "")
	viper.SetDefault("TIMELINE_DEFAULT_WINDOW", false)
	viper.SetDefault("TIMELINE_DEFAULT_START", "08:00")
	viper.SetDefault("TIMELINE_DEFAULT_END", "17:00")
	viper.SetDefault("TIMELINE_CACHE_TTL_SECONDS", 120)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
