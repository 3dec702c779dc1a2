package project

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/cnnkit/internal/common"
)

const (
	loggerNameConstant                     = "project"
	settingsLoadedMessageConstant          = "project settings loaded"
	logFieldConfigurationPathConstant      = "config_file"
	logFieldParametersPathConstant         = "params_file"
	logFieldArtifactsRootConstant          = "artifacts_root"
	configurationLoadErrorTemplateConstant = "unable to load project configuration: %w"
	parametersLoadErrorTemplateConstant    = "unable to load training parameters: %w"
	artifactsRootErrorTemplateConstant     = "unable to prepare artifacts root: %w"
)

// Loader reads project settings through the shared toolkit.
type Loader struct {
	logger  *zap.Logger
	toolkit *common.Toolkit
}

// NewLoader constructs a Loader; a nil logger disables logging.
func NewLoader(logger *zap.Logger, toolkit *common.Toolkit) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if toolkit == nil {
		toolkit = common.NewToolkit(logger)
	}
	return &Loader{logger: logger.Named(loggerNameConstant), toolkit: toolkit}
}

// Load reads both documents, validates them, and ensures the artifacts root exists.
func (loader *Loader) Load(configurationPath string, parametersPath string) (Settings, error) {
	settings := Settings{}

	if loadError := loader.toolkit.ReadYAML(configurationPath, &settings.Configuration); loadError != nil {
		return Settings{}, fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	if loadError := loader.toolkit.ReadYAML(parametersPath, &settings.Parameters); loadError != nil {
		return Settings{}, fmt.Errorf(parametersLoadErrorTemplateConstant, loadError)
	}

	if createError := loader.toolkit.CreateDirectories([]string{settings.Configuration.ArtifactsRoot}, true); createError != nil {
		return Settings{}, fmt.Errorf(artifactsRootErrorTemplateConstant, createError)
	}

	loader.logger.Info(
		settingsLoadedMessageConstant,
		zap.String(logFieldConfigurationPathConstant, configurationPath),
		zap.String(logFieldParametersPathConstant, parametersPath),
		zap.String(logFieldArtifactsRootConstant, settings.Configuration.ArtifactsRoot),
	)

	return settings, nil
}
