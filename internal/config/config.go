package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort            string `mapstructure:"APP_PORT"`
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	MongoURI           string `mapstructure:"MONGODB_URI"`
	MongoDatabase      string `mapstructure:"MONGODB_DATABASE"`
	Timezone           string `mapstructure:"TIMEZONE"`
	WorkbookBaseURL    string `mapstructure:"WORKBOOK_BASE_URL"`
	PrefetchCron       string `mapstructure:"PREFETCH_CRON"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
}

var AppConfig Config

// Load reads config.yaml (current directory or ./config) and the
// environment into AppConfig.
func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8910")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "nordeste")
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("WORKBOOK_BASE_URL", "")
	// Monday noon, after the weekend roll-forward window has passed
	viper.SetDefault("PREFETCH_CRON", "0 12 * * 1")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)

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
