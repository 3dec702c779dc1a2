package scaffold

import "strings"

const (
	projectNameKeySuffixConstant = ".project_name"
	rootKeySuffixConstant        = ".root"
	extraFilesKeySuffixConstant  = ".extra_files"
	defaultRootConstant          = "."
)

// CommandConfiguration captures configuration values for the scaffold command.
type CommandConfiguration struct {
	ProjectName string   `mapstructure:"project_name"`
	Root        string   `mapstructure:"root"`
	ExtraFiles  []string `mapstructure:"extra_files"`
}

// DefaultCommandConfiguration provides baseline configuration values for scaffolding.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		ProjectName: DefaultProjectName,
		Root:        defaultRootConstant,
		ExtraFiles:  []string{},
	}
}

// DefaultConfigurationValues returns viper defaults under the provided key prefix.
func DefaultConfigurationValues(keyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		keyPrefix + projectNameKeySuffixConstant: defaults.ProjectName,
		keyPrefix + rootKeySuffixConstant:        defaults.Root,
		keyPrefix + extraFilesKeySuffixConstant:  defaults.ExtraFiles,
	}
}

// sanitize trims configuration values and restores defaults for blank entries.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.ProjectName = strings.TrimSpace(configuration.ProjectName)
	if len(sanitized.ProjectName) == 0 {
		sanitized.ProjectName = DefaultProjectName
	}

	sanitized.Root = strings.TrimSpace(configuration.Root)
	if len(sanitized.Root) == 0 {
		sanitized.Root = defaultRootConstant
	}

	sanitized.ExtraFiles = make([]string, 0, len(configuration.ExtraFiles))
	for _, extraFile := range configuration.ExtraFiles {
		if trimmed := strings.TrimSpace(extraFile); len(trimmed) > 0 {
			sanitized.ExtraFiles = append(sanitized.ExtraFiles, trimmed)
		}
	}

	return sanitized
}
