/**
 * @description
 * This file handles configuration management for the banking service. It
 * uses the 'viper' library to load settings from environment variables,
 * providing defaults that match the service's out-of-the-box behavior.
 */
package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                    string `mapstructure:"PORT"`
	BankName                string `mapstructure:"BANK_NAME"`
	RoutingNumber           string `mapstructure:"ROUTING_NUMBER"`
	FrontendFile            string `mapstructure:"FRONTEND_FILE"`
	LogLevel                string `mapstructure:"LOG_LEVEL"`
	InterestAccrualEnabled  bool   `mapstructure:"INTEREST_ACCRUAL_ENABLED"`
	InterestAccrualSchedule string `mapstructure:"INTEREST_ACCRUAL_SCHEDULE"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("PORT", "10000")
	viper.SetDefault("BANK_NAME", "Digital Bank")
	viper.SetDefault("ROUTING_NUMBER", "123456789")
	viper.SetDefault("FRONTEND_FILE", "web/index.html")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("INTEREST_ACCRUAL_ENABLED", false)
	viper.SetDefault("INTEREST_ACCRUAL_SCHEDULE", "0 0 1 * *") // midnight on the 1st of each month
	viper.AutomaticEnv()

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("BANK_NAME")
	_ = viper.BindEnv("ROUTING_NUMBER")
	_ = viper.BindEnv("FRONTEND_FILE")
	_ = viper.BindEnv("LOG_LEVEL")
	_ = viper.BindEnv("INTEREST_ACCRUAL_ENABLED")
	_ = viper.BindEnv("INTEREST_ACCRUAL_SCHEDULE")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}
