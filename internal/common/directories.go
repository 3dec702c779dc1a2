package common

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

const (
	directoryCreatedMessageConstant      = "created directory"
	createDirectoryErrorTemplateConstant = "unable to create directory %s: %w"
)

// CreateDirectories creates every path with its parents. Existing directories are left as they are.
func (toolkit *Toolkit) CreateDirectories(paths []string, verbose bool) error {
	for _, path := range paths {
		if createError := os.MkdirAll(path, directoryPermissionsConstant); createError != nil {
			return fmt.Errorf(createDirectoryErrorTemplateConstant, path, createError)
		}
		if verbose {
			toolkit.logger.Info(directoryCreatedMessageConstant, zap.String(logFieldPathConstant, path))
		}
	}
	return nil
}
