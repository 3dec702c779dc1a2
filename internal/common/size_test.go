package common_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/cnnkit/internal/common"
)

func TestGetSize(testInstance *testing.T) {
	testCases := []struct {
		name         string
		sizeInBytes  int
		expectedSize string
	}{
		{name: "empty_file", sizeInBytes: 0, expectedSize: "~ 0 KB"},
		{name: "exactly_one_kilobyte", sizeInBytes: 1024, expectedSize: "~ 1 KB"},
		{name: "half_rounds_to_even_down", sizeInBytes: 512, expectedSize: "~ 0 KB"},
		{name: "one_and_half_rounds_to_even_up", sizeInBytes: 1536, expectedSize: "~ 2 KB"},
		{name: "two_and_half_rounds_to_even_down", sizeInBytes: 2560, expectedSize: "~ 2 KB"},
		{name: "rounds_up_above_half", sizeInBytes: 1800, expectedSize: "~ 2 KB"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			path := writeFixtureFile(testInstance, "weights.h5", strings.Repeat("x", testCase.sizeInBytes))

			size, sizeError := common.NewToolkit(nil).GetSize(path)
			require.NoError(testInstance, sizeError)
			require.Equal(testInstance, testCase.expectedSize, size)
		})
	}
}

func TestHumanSize(testInstance *testing.T) {
	path := writeFixtureFile(testInstance, "weights.h5", strings.Repeat("x", 1536))

	size, sizeError := common.NewToolkit(nil).HumanSize(path)
	require.NoError(testInstance, sizeError)
	require.Equal(testInstance, "1.5 KiB", size)
}

func TestGetSizeMissingPath(testInstance *testing.T) {
	_, sizeError := common.NewToolkit(nil).GetSize(filepath.Join(testInstance.TempDir(), "absent"))
	require.ErrorIs(testInstance, sizeError, os.ErrNotExist)
}
