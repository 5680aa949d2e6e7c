package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Hotel inventory store (DynamoDB).
	AWSRegion   string `mapstructure:"AWS_REGION"`
	DynamoTable string `mapstructure:"DYNAMO_TABLE"`

	// Ratehawk API.
	RatehawkBaseURL string `mapstructure:"RATEHAWK_BASE_URL"`
	RatehawkKeyID   string `mapstructure:"RATEHAWK_KEY_ID"`
	RatehawkAPIKey  string `mapstructure:"RATEHAWK_API_KEY"`

	// TBO API.
	TBOBaseURL  string `mapstructure:"TBO_BASE_URL"`
	TBOUsername string `mapstructure:"TBO_USERNAME"`
	TBOPassword string `mapstructure:"TBO_PASSWORD"`

	// Duffel flights API.
	DuffelBaseURL  string `mapstructure:"DUFFEL_BASE_URL"`
	DuffelAPIToken string `mapstructure:"DUFFEL_API_TOKEN"`
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
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("DYNAMO_TABLE", "hotels")
	viper.SetDefault("RATEHAWK_BASE_URL", "https://api.worldota.net/api/b2b/v3")
	viper.SetDefault("RATEHAWK_KEY_ID", "")
	viper.SetDefault("RATEHAWK_API_KEY", "")
	viper.SetDefault("TBO_BASE_URL", "http://api.tbotechnology.in/TBOHolidays_HotelAPI")
	viper.SetDefault("TBO_USERNAME", "")
	viper.SetDefault("TBO_PASSWORD", "")
	viper.SetDefault("DUFFEL_BASE_URL", "https://api.duffel.com")
	viper.SetDefault("DUFFEL_API_TOKEN", "")

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
