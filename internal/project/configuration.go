package project

import (
	"path/filepath"
	"strings"
)

const (
	configurationFileKeySuffixConstant = ".config_file"
	parametersFileKeySuffixConstant    = ".params_file"
)

var (
	defaultConfigurationFilePath = filepath.Join("config", "config.yaml")
	defaultParametersFilePath    = "params.yaml"
)

// CommandConfiguration captures configuration values for the project-settings command.
type CommandConfiguration struct {
	ConfigurationFile string `mapstructure:"config_file"`
	ParametersFile    string `mapstructure:"params_file"`
}

// DefaultCommandConfiguration provides the conventional project file locations.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		ConfigurationFile: defaultConfigurationFilePath,
		ParametersFile:    defaultParametersFilePath,
	}
}

// DefaultConfigurationValues returns viper defaults under the provided key prefix.
func DefaultConfigurationValues(keyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		keyPrefix + configurationFileKeySuffixConstant: defaults.ConfigurationFile,
		keyPrefix + parametersFileKeySuffixConstant:    defaults.ParametersFile,
	}
}

func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := CommandConfiguration{
		ConfigurationFile: strings.TrimSpace(configuration.ConfigurationFile),
		ParametersFile:    strings.TrimSpace(configuration.ParametersFile),
	}
	if len(sanitized.ConfigurationFile) == 0 {
		sanitized.ConfigurationFile = defaults.ConfigurationFile
	}
	if len(sanitized.ParametersFile) == 0 {
		sanitized.ParametersFile = defaults.ParametersFile
	}
	return sanitized
}
