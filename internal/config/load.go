package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfigWithName loads configuration using the specified name, auto-detecting the file type
// This is useful when the configuration file extension is unknown or variable
func LoadConfigWithName(configName string) (*Config, error) {
	return loadConfig(configName, "")
}

// LoadConfigWithNameAndType loads configuration with explicit name and type specification
// Use this when you need to force a specific configuration format (e.g., "yaml", "json")
func LoadConfigWithNameAndType(configName, configType string) (*Config, error) {
	return loadConfig(configName, configType)
}

// LoadConfig loads configuration from a .env file using the provided base name
// This is the preferred method for loading environment-specific configurations
func LoadConfig(configName string) (*Config, error) {
	configFileName := fmt.Sprintf("%s.env", configName)
	return loadConfig(configFileName, "env")
}

// loadConfig handles configuration loading from files and environment variables.
// It implements a layered approach to configuration:
// 1. Load defaults
// 2. Override with config file values (if found)
// 3. Override with environment variables
// 4. Validate the final configuration
func loadConfig(configName, configType string) (*Config, error) {
	// Initialize viper with default values
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	// Add config paths in order of priority
	v.AddConfigPath("./configs") // First check in configs directory
	v.AddConfigPath(".")         // Then check in root directory

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Printf("INFO: No config file '%s' found, relying on environment variables and defaults.\n", configName)
		} else {
			fmt.Printf("WARNING: Error reading config file (%s): %v\n", v.ConfigFileUsed(), err)
		}
	} else {
		fmt.Printf("INFO: Config loaded from file: %s\n", v.ConfigFileUsed())
	}

	v.AutomaticEnv() // Automatically read matching environment variables

	// Build the config struct
	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Originator: OriginatorConfig{
			ImmediateDest:     v.GetString("ACH_IMMEDIATE_DEST"),
			ImmediateOrg:      v.GetString("ACH_IMMEDIATE_ORG"),
			ImmediateDestName: v.GetString("ACH_IMMEDIATE_DEST_NAME"),
			ImmediateOrgName:  v.GetString("ACH_IMMEDIATE_ORG_NAME"),
			CompanyID:         v.GetString("ACH_COMPANY_ID"),
			FileIDMod:         v.GetString("ACH_FILE_ID_MOD"),
		},
		Output: OutputConfig{
			ForceCRLF: v.GetBool("ACH_FORCE_CRLF"),
		},
	}

	// Validate the configuration
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults initializes configuration with sensible default values.
// These values are used when no configuration file or environment variables are present.
func setDefaults(v *viper.Viper) {
	// Originator defaults - the identity block has no safe defaults and
	// must come from a config file or the environment
	v.SetDefault("ACH_IMMEDIATE_DEST", "")
	v.SetDefault("ACH_IMMEDIATE_ORG", "")
	v.SetDefault("ACH_IMMEDIATE_DEST_NAME", "")
	v.SetDefault("ACH_IMMEDIATE_ORG_NAME", "")
	v.SetDefault("ACH_COMPANY_ID", "")
	v.SetDefault("ACH_FILE_ID_MOD", "A") // first file of the day

	// Output defaults - some bank transfer portals require CRLF endings
	v.SetDefault("ACH_FORCE_CRLF", false)

	// Logging defaults - 'info' provides good balance of information vs noise
	v.SetDefault("LOG_LEVEL", "info")

	// Application defaults - development-friendly baseline configuration
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "ach-builder")
}
