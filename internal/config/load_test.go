package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_HappyPath(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	tempConfigsSubDir := filepath.Join(tempDir, "configs")
	err = os.Mkdir(tempConfigsSubDir, 0755)
	require.NoError(t, err)

	testAppName := "TestApp"
	testLogLevel := "debug"
	testDest := "123456780"
	testOrg := "123456780"

	envContent := fmt.Sprintf(
		"APP_NAME=%s\nLOG_LEVEL=%s\nACH_IMMEDIATE_DEST=%s\nACH_IMMEDIATE_ORG=%s\n"+
			"ACH_IMMEDIATE_DEST_NAME=YOUR BANK\nACH_IMMEDIATE_ORG_NAME=YOUR COMPANY\n"+
			"ACH_COMPANY_ID=1234567890\nACH_FILE_ID_MOD=B\nACH_FORCE_CRLF=true\n",
		testAppName, testLogLevel, testDest, testOrg,
	)
	envFilePath := filepath.Join(tempConfigsSubDir, "test_happy.env")
	err = os.WriteFile(envFilePath, []byte(envContent), 0644)
	require.NoError(t, err)

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		_ = os.Chdir(originalWD)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	cfg, err := LoadConfig("test_happy")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, testAppName, cfg.Application.Name)
	assert.Equal(t, testLogLevel, cfg.Logging.Level)
	assert.Equal(t, testDest, cfg.Originator.ImmediateDest)
	assert.Equal(t, testOrg, cfg.Originator.ImmediateOrg)
	assert.Equal(t, "YOUR BANK", cfg.Originator.ImmediateDestName)
	assert.Equal(t, "YOUR COMPANY", cfg.Originator.ImmediateOrgName)
	assert.Equal(t, "1234567890", cfg.Originator.CompanyID)
	assert.Equal(t, "B", cfg.Originator.FileIDMod)
	assert.True(t, cfg.Output.ForceCRLF)

	assert.Equal(t, "development", cfg.Application.Env)

	cfgWithName, err := LoadConfigWithName("configs/test_happy") // Viper will look for configs/test_happy.env
	require.NoError(t, err)
	require.NotNil(t, cfgWithName)
	assert.Equal(t, testAppName, cfgWithName.Application.Name)

	// Test LoadConfigWithNameAndType
	cfgWithNameAndType, err := LoadConfigWithNameAndType("configs/test_happy", "env")
	require.NoError(t, err)
	require.NotNil(t, cfgWithNameAndType)
	assert.Equal(t, testAppName, cfgWithNameAndType.Application.Name)
}

func TestLoadConfig_MissingOriginator(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		_ = os.Chdir(originalWD)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	// No config file and no environment: the originator block has no
	// defaults, so validation must fail and name every missing key.
	cfg, err := LoadConfig("does_not_exist")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ACH_IMMEDIATE_DEST is required")
	assert.Contains(t, err.Error(), "ACH_COMPANY_ID is required")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Application: ApplicationConfig{Env: "development", Name: "ach-builder"},
			Logging:     LoggingConfig{Level: "info"},
			Originator: OriginatorConfig{
				ImmediateDest:     "123456780",
				ImmediateOrg:      "123456780",
				ImmediateDestName: "YOUR BANK",
				ImmediateOrgName:  "YOUR COMPANY",
				CompanyID:         "1234567890",
				FileIDMod:         "A",
			},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("BadFileIDMod", func(t *testing.T) {
		for _, mod := range []string{"", "a", "AA", "1"} {
			cfg := valid()
			cfg.Originator.FileIDMod = mod
			err := cfg.validate()
			require.Error(t, err, "file id mod %q should be rejected", mod)
			assert.Contains(t, err.Error(), "ACH_FILE_ID_MOD")
		}
	})

	t.Run("CollectsAllFailures", func(t *testing.T) {
		cfg := valid()
		cfg.Originator.ImmediateDest = ""
		cfg.Originator.ImmediateOrgName = ""
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ACH_IMMEDIATE_DEST is required")
		assert.Contains(t, err.Error(), "ACH_IMMEDIATE_ORG_NAME is required")
	})
}
