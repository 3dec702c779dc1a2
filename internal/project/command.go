package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/cnnkit/internal/common"
)

const (
	commandUseConstant                    = "project-settings"
	commandShortDescriptionConstant       = "Load and print config/config.yaml and params.yaml"
	commandLongDescriptionConstant        = "project-settings validates the project configuration and training parameters, prepares the artifacts root, and prints the resolved settings as JSON."
	commandExecutionErrorTemplateConstant = "project settings failed: %w"
	unexpectedArgumentsMessageConstant    = "project-settings does not accept positional arguments"
	flagConfigFileNameConstant            = "config-file"
	flagConfigFileDescriptionConstant     = "Path to the project configuration YAML"
	flagParamsFileNameConstant            = "params-file"
	flagParamsFileDescriptionConstant     = "Path to the training parameters YAML"
	flagOutputNameConstant                = "output"
	flagOutputDescriptionConstant         = "Also save the resolved settings to this JSON file"
	settingsIndentConstant                = "    "
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the configured project file locations.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the project-settings Cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the project-settings command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagConfigFileNameConstant, "", flagConfigFileDescriptionConstant)
	command.Flags().String(flagParamsFileNameConstant, "", flagParamsFileDescriptionConstant)
	command.Flags().String(flagOutputNameConstant, "", flagOutputDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	configuration := builder.resolveConfiguration()
	if flagValue, _ := command.Flags().GetString(flagConfigFileNameConstant); len(strings.TrimSpace(flagValue)) > 0 {
		configuration.ConfigurationFile = strings.TrimSpace(flagValue)
	}
	if flagValue, _ := command.Flags().GetString(flagParamsFileNameConstant); len(strings.TrimSpace(flagValue)) > 0 {
		configuration.ParametersFile = strings.TrimSpace(flagValue)
	}
	outputPath, _ := command.Flags().GetString(flagOutputNameConstant)

	logger := builder.resolveLogger()
	toolkit := common.NewToolkit(logger)

	settings, loadError := NewLoader(logger, toolkit).Load(configuration.ConfigurationFile, configuration.ParametersFile)
	if loadError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, loadError)
	}

	renderedSettings, renderError := json.MarshalIndent(settings, "", settingsIndentConstant)
	if renderError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, renderError)
	}
	fmt.Fprintln(command.OutOrStdout(), string(renderedSettings))

	if trimmedOutputPath := strings.TrimSpace(outputPath); len(trimmedOutputPath) > 0 {
		if saveError := toolkit.SaveJSON(trimmedOutputPath, settings); saveError != nil {
			return fmt.Errorf(commandExecutionErrorTemplateConstant, saveError)
		}
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
