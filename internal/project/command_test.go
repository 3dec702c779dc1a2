package project_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/cnnkit/internal/project"
)

func TestCommandPrintsAndSavesSettings(testInstance *testing.T) {
	files := writeProjectFiles(testInstance, "", testParametersContentConstant)
	outputPath := filepath.Join(testInstance.TempDir(), "settings.json")

	builder := project.CommandBuilder{
		ConfigurationProvider: func() project.CommandConfiguration {
			return project.CommandConfiguration{ConfigurationFile: files.configurationPath, ParametersFile: "unused.yaml"}
		},
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	capturedOutput := &bytes.Buffer{}
	command.SetOut(capturedOutput)
	command.SetArgs([]string{"--params-file", files.parametersPath, "--output", outputPath})
	require.NoError(testInstance, command.Execute())

	printedSettings := project.Settings{}
	require.NoError(testInstance, json.Unmarshal(capturedOutput.Bytes(), &printedSettings))
	require.Equal(testInstance, files.artifactsRoot, printedSettings.Configuration.ArtifactsRoot)
	require.Equal(testInstance, 16, printedSettings.Parameters.BatchSize)
	require.Contains(testInstance, capturedOutput.String(), "\n    \"config\": {")
	require.FileExists(testInstance, outputPath)
}

func TestCommandRejectsPositionalArguments(testInstance *testing.T) {
	builder := project.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"extra"})
	require.EqualError(testInstance, command.Execute(), "project-settings does not accept positional arguments")
}

func TestDefaultConfigurationValues(testInstance *testing.T) {
	require.Equal(testInstance, map[string]any{
		"tools.project.config_file": filepath.Join("config", "config.yaml"),
		"tools.project.params_file": "params.yaml",
	}, project.DefaultConfigurationValues("tools.project"))
}
