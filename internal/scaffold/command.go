package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pathutils "github.com/temirov/cnnkit/internal/utils/path"
)

const (
	commandUseConstant                    = "scaffold"
	commandShortDescriptionConstant       = "Create the project directory and file skeleton"
	commandLongDescriptionConstant        = "scaffold creates the directories and empty files an image classification project expects. Existing files are kept as they are."
	commandExecutionErrorTemplateConstant = "scaffold failed: %w"
	rootResolutionErrorTemplateConstant   = "unable to resolve project root: %w"
	unexpectedArgumentsMessageConstant    = "scaffold does not accept positional arguments"
	flagProjectNameConstant               = "project-name"
	flagProjectNameDescriptionConstant    = "Name of the Python package created under src/"
	flagRootNameConstant                  = "root"
	flagRootDescriptionConstant           = "Directory in which the skeleton is created"
	summaryTemplateConstant               = "created %d directories and %d files, kept %d existing files\n"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies scaffold configuration values.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the Cobra command for scaffolding.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            FileSystem
	RootResolver          *pathutils.ProjectRootResolver
}

// Build constructs the scaffold command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagProjectNameConstant, "", flagProjectNameDescriptionConstant)
	command.Flags().String(flagRootNameConstant, "", flagRootDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	options, optionsError := builder.parseOptions(command)
	if optionsError != nil {
		return optionsError
	}

	fileSystem := builder.FileSystem
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}

	service, serviceError := NewService(builder.resolveLogger(), fileSystem)
	if serviceError != nil {
		return serviceError
	}

	result, scaffoldError := service.Scaffold(command.Context(), options)
	if scaffoldError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, scaffoldError)
	}

	fmt.Fprintf(command.OutOrStdout(), summaryTemplateConstant, len(result.CreatedDirectories), len(result.CreatedFiles), len(result.SkippedFiles))
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) (Options, error) {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	if projectNameValue, _ := command.Flags().GetString(flagProjectNameConstant); len(strings.TrimSpace(projectNameValue)) > 0 {
		configuration.ProjectName = projectNameValue
	}
	if rootValue, _ := command.Flags().GetString(flagRootNameConstant); len(strings.TrimSpace(rootValue)) > 0 {
		configuration.Root = rootValue
	}
	configuration = configuration.sanitize()

	layout, layoutError := Layout(configuration.ProjectName, configuration.ExtraFiles)
	if layoutError != nil {
		return Options{}, layoutError
	}

	rootResolver := builder.RootResolver
	if rootResolver == nil {
		rootResolver = pathutils.NewProjectRootResolver()
	}
	resolvedRoot, resolveError := rootResolver.Resolve(configuration.Root)
	if resolveError != nil {
		return Options{}, fmt.Errorf(rootResolutionErrorTemplateConstant, resolveError)
	}

	return Options{Root: resolvedRoot, Paths: layout}, nil
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
