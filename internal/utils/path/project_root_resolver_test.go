package pathutils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/cnnkit/internal/utils/path"
)

const (
	testHomeDirectoryConstant   = "/home/tester"
	testRelativeProjectConstant = "Projects/chicken-disease"
)

func TestProjectRootResolverExpand(testInstance *testing.T) {
	resolver := pathutils.NewProjectRootResolverWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	testCases := []struct {
		name         string
		input        string
		expectedPath string
	}{
		{name: "bare_tilde", input: "~", expectedPath: testHomeDirectoryConstant},
		{name: "tilde_prefix", input: "~/" + testRelativeProjectConstant, expectedPath: filepath.Join(testHomeDirectoryConstant, testRelativeProjectConstant)},
		{name: "absolute_path_untouched", input: "/srv/projects", expectedPath: "/srv/projects"},
		{name: "tilde_user_untouched", input: "~other/projects", expectedPath: "~other/projects"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedPath, resolver.Expand(testCase.input))
		})
	}
}

func TestProjectRootResolverHomeLookupFailureLeavesPath(testInstance *testing.T) {
	resolver := pathutils.NewProjectRootResolverWithProvider(func() (string, error) {
		return "", errors.New("no home")
	})
	require.Equal(testInstance, "~/data", resolver.Expand("~/data"))
}

func TestProjectRootResolverResolve(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	resolver := pathutils.NewProjectRootResolverWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	emptyRoot, resolveError := resolver.Resolve("  ")
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, workingDirectory, emptyRoot)

	relativeRoot, resolveError := resolver.Resolve("research/../artifacts")
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, filepath.Join(workingDirectory, "artifacts"), relativeRoot)

	homeRoot, resolveError := resolver.Resolve("~/" + testRelativeProjectConstant)
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, filepath.Join(testHomeDirectoryConstant, testRelativeProjectConstant), homeRoot)
}
