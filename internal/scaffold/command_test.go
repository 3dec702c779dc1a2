package scaffold_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/cnnkit/internal/scaffold"
	pathutils "github.com/temirov/cnnkit/internal/utils/path"
)

func TestCommandRunScenarios(testInstance *testing.T) {
	testCases := []struct {
		name                string
		configuration       scaffold.CommandConfiguration
		arguments           func(root string) []string
		expectedPackageFile string
		expectedExtraFile   string
		expectedSummary     string
	}{
		{
			name: "configuration_root_and_project",
			configuration: scaffold.CommandConfiguration{
				ProjectName: "cnnClassifier",
				ExtraFiles:  []string{"dvc.yaml"},
			},
			arguments: func(root string) []string {
				return []string{"--root", root}
			},
			expectedPackageFile: "src/cnnClassifier/__init__.py",
			expectedExtraFile:   "dvc.yaml",
			expectedSummary:     "created 11 directories and 20 files, kept 0 existing files\n",
		},
		{
			name:          "flag_overrides_project_name",
			configuration: scaffold.CommandConfiguration{ProjectName: "ignored"},
			arguments: func(root string) []string {
				return []string{"--root", root, "--project-name", "poultryClassifier"}
			},
			expectedPackageFile: "src/poultryClassifier/__init__.py",
			expectedSummary:     "created 11 directories and 19 files, kept 0 existing files\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			root := testInstance.TempDir()
			observerCore, observedLogs := observer.New(zap.InfoLevel)

			builder := scaffold.CommandBuilder{
				LoggerProvider: func() *zap.Logger {
					return zap.New(observerCore)
				},
				ConfigurationProvider: func() scaffold.CommandConfiguration {
					return testCase.configuration
				},
			}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			capturedOutput := &bytes.Buffer{}
			command.SetOut(capturedOutput)
			command.SetArgs(testCase.arguments(root))
			require.NoError(testInstance, command.Execute())

			require.FileExists(testInstance, filepath.Join(root, filepath.FromSlash(testCase.expectedPackageFile)))
			if len(testCase.expectedExtraFile) > 0 {
				require.FileExists(testInstance, filepath.Join(root, testCase.expectedExtraFile))
			}
			require.Equal(testInstance, testCase.expectedSummary, capturedOutput.String())
			require.Equal(testInstance, 1, observedLogs.FilterMessage("project scaffold completed").Len())
		})
	}
}

func TestCommandExpandsHomeRoot(testInstance *testing.T) {
	homeDirectory := testInstance.TempDir()
	builder := scaffold.CommandBuilder{
		ConfigurationProvider: func() scaffold.CommandConfiguration {
			return scaffold.CommandConfiguration{Root: "~/projects/chicken"}
		},
		RootResolver: pathutils.NewProjectRootResolverWithProvider(func() (string, error) {
			return homeDirectory, nil
		}),
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetArgs([]string{})
	require.NoError(testInstance, command.Execute())
	require.FileExists(testInstance, filepath.Join(homeDirectory, "projects", "chicken", "params.yaml"))
}

func TestCommandRejectsInvalidInput(testInstance *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		expectedError string
		expectedIs    error
	}{
		{name: "positional_arguments", arguments: []string{"extra"}, expectedError: "scaffold does not accept positional arguments"},
		{name: "nested_project_name", arguments: []string{"--project-name", "a/b"}, expectedIs: scaffold.ErrInvalidProjectName},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			builder := scaffold.CommandBuilder{}
			command, buildError := builder.Build()
			require.NoError(testInstance, buildError)

			command.SetOut(&bytes.Buffer{})
			command.SetErr(&bytes.Buffer{})
			command.SetArgs(testCase.arguments)
			executionError := command.Execute()
			if testCase.expectedIs != nil {
				require.ErrorIs(testInstance, executionError, testCase.expectedIs)
				return
			}
			require.EqualError(testInstance, executionError, testCase.expectedError)
		})
	}
}

func TestDefaultConfigurationValues(testInstance *testing.T) {
	require.Equal(testInstance, map[string]any{
		"tools.scaffold.project_name": "cnnClassifier",
		"tools.scaffold.root":         ".",
		"tools.scaffold.extra_files":  []string{},
	}, scaffold.DefaultConfigurationValues("tools.scaffold"))
}
