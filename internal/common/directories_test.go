package common_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateDirectoriesIsIdempotent(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	paths := []string{
		filepath.Join(rootDirectory, "artifacts", "data_ingestion"),
		filepath.Join(rootDirectory, "artifacts", "prepare_base_model"),
	}

	toolkit, observedLogs := newObservedToolkit(testInstance)
	require.NoError(testInstance, toolkit.CreateDirectories(paths, true))
	require.NoError(testInstance, toolkit.CreateDirectories(paths, true))

	for _, path := range paths {
		require.DirExists(testInstance, path)
	}
	entries, readError := os.ReadDir(filepath.Join(rootDirectory, "artifacts"))
	require.NoError(testInstance, readError)
	require.Len(testInstance, entries, 2)
	require.Equal(testInstance, 4, observedLogs.FilterMessage("created directory").Len())
}

func TestCreateDirectoriesQuiet(testInstance *testing.T) {
	toolkit, observedLogs := newObservedToolkit(testInstance)
	require.NoError(testInstance, toolkit.CreateDirectories([]string{filepath.Join(testInstance.TempDir(), "logs")}, false))
	require.Zero(testInstance, observedLogs.Len())
}

func TestCreateDirectoriesBlockedByFile(testInstance *testing.T) {
	blockingFile := writeFixtureFile(testInstance, "artifacts", "occupied")
	toolkit, _ := newObservedToolkit(testInstance)
	require.Error(testInstance, toolkit.CreateDirectories([]string{filepath.Join(blockingFile, "nested")}, true))
}
