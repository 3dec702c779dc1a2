package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	listValueSeparatorConstant                      = ","
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
)

// ConfigurationLoader wraps Viper to load the toolkit configuration file and environment overrides.
type ConfigurationLoader struct {
	configurationName         string
	configurationType         string
	environmentPrefix         string
	searchPaths               []string
	environmentKeyReplacer    *strings.Replacer
	embeddedConfiguration     []byte
	embeddedConfigurationType string
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader that searches known paths and respects an environment prefix.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		configurationName:      configurationName,
		configurationType:      configurationType,
		environmentPrefix:      environmentPrefix,
		searchPaths:            append([]string(nil), searchPaths...),
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// SetEmbeddedConfiguration stores configuration data merged before user-provided configuration files.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}

	loader.embeddedConfigurationType = strings.TrimSpace(configurationType)
	loader.embeddedConfiguration = nil
	if len(configurationData) > 0 {
		loader.embeddedConfiguration = append([]byte(nil), configurationData...)
	}
}

// LoadConfiguration populates targetConfiguration from embedded data, defaults, the configuration file, and the environment.
// Comma-separated environment values decode into string slices.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	layeredConfiguration, layeringError := loader.layeredConfiguration(configurationFilePath, defaultValues)
	if layeringError != nil {
		return LoadedConfiguration{}, layeringError
	}

	if unmarshalError := layeredConfiguration.Unmarshal(targetConfiguration, viper.DecodeHook(configurationDecodeHook())); unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{ConfigFileUsed: layeredConfiguration.ConfigFileUsed()}, nil
}

// layeredConfiguration stacks embedded data, defaults, the configuration file and prefixed environment keys.
func (loader *ConfigurationLoader) layeredConfiguration(configurationFilePath string, defaultValues map[string]any) (*viper.Viper, error) {
	layers := viper.New()
	layers.SetConfigName(loader.configurationName)

	if mergeError := loader.mergeEmbeddedConfiguration(layers); mergeError != nil {
		return nil, mergeError
	}
	layers.SetConfigType(loader.configurationType)

	for _, searchPath := range loader.searchPaths {
		layers.AddConfigPath(searchPath)
	}
	for defaultKey, defaultValue := range defaultValues {
		layers.SetDefault(defaultKey, defaultValue)
	}

	layers.SetEnvPrefix(loader.environmentPrefix)
	layers.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	layers.AutomaticEnv()

	if len(configurationFilePath) > 0 {
		layers.SetConfigFile(configurationFilePath)
	}

	readError := layers.MergeInConfig()
	var notFoundError viper.ConfigFileNotFoundError
	if readError != nil && !errors.As(readError, &notFoundError) {
		return nil, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
	}

	return layers, nil
}

func (loader *ConfigurationLoader) mergeEmbeddedConfiguration(layers *viper.Viper) error {
	if len(loader.embeddedConfiguration) == 0 {
		return nil
	}

	embeddedType := loader.embeddedConfigurationType
	if len(embeddedType) == 0 {
		embeddedType = loader.configurationType
	}
	layers.SetConfigType(embeddedType)

	if mergeError := layers.MergeConfig(bytes.NewReader(loader.embeddedConfiguration)); mergeError != nil {
		return fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
	}
	return nil
}

// configurationDecodeHook converts duration strings and comma-separated lists such as CNNKIT_TOOLS_SCAFFOLD_EXTRA_FILES.
func configurationDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(listValueSeparatorConstant),
	)
}
