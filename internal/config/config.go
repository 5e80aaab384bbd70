// Package config provides configuration structures and validation for the
// ACH tooling. It handles environment-based configuration for the
// originator identity block the file builder needs plus operational
// parameters for the CLIs.
package config

import (
	"errors"
	"strings"
)

// Config holds the complete application configuration. The Originator
// section maps one-to-one onto the builder's required settings and is
// validated during application startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Originator  OriginatorConfig
	Output      OutputConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// OriginatorConfig identifies the file originator: the immediate
// destination and origin routing/ID pair, their printable names, and the
// company tax ID stamped into batch headers.
type OriginatorConfig struct {
	ImmediateDest     string
	ImmediateOrg      string
	ImmediateDestName string
	ImmediateOrgName  string
	CompanyID         string
	FileIDMod         string // "A" for the first file of the day, "B" for the second, ...
}

// OutputConfig contains rendering configuration
type OutputConfig struct {
	ForceCRLF bool // emit \r\n line endings instead of \n
}

// validate performs validation of all configuration values, collecting
// every failure so the operator sees the full list at once
func (c *Config) validate() error {
	var validationErrors []string

	if c.Originator.ImmediateDest == "" {
		validationErrors = append(validationErrors, "ACH_IMMEDIATE_DEST is required")
	}
	if c.Originator.ImmediateOrg == "" {
		validationErrors = append(validationErrors, "ACH_IMMEDIATE_ORG is required")
	}
	if c.Originator.ImmediateDestName == "" {
		validationErrors = append(validationErrors, "ACH_IMMEDIATE_DEST_NAME is required")
	}
	if c.Originator.ImmediateOrgName == "" {
		validationErrors = append(validationErrors, "ACH_IMMEDIATE_ORG_NAME is required")
	}
	if c.Originator.CompanyID == "" {
		validationErrors = append(validationErrors, "ACH_COMPANY_ID is required")
	}
	if len(c.Originator.FileIDMod) != 1 || c.Originator.FileIDMod[0] < 'A' || c.Originator.FileIDMod[0] > 'Z' {
		validationErrors = append(validationErrors, "ACH_FILE_ID_MOD must be a single uppercase letter")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
