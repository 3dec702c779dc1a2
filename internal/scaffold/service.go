package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const (
	loggerNameConstant                   = "scaffold"
	directoryPermissionsConstant         = 0o755
	filePermissionsConstant              = 0o644
	creatingDirectoryMessageConstant     = "creating directory"
	creatingEmptyFileMessageConstant     = "creating empty file"
	fileAlreadyExistsMessageConstant     = "file already exists"
	scaffoldCompletedMessageConstant     = "project scaffold completed"
	logFieldDirectoryConstant            = "directory"
	logFieldFileConstant                 = "file"
	logFieldPathConstant                 = "path"
	logFieldSizeConstant                 = "size"
	logFieldRootConstant                 = "root"
	logFieldCreatedFilesConstant         = "created_files"
	logFieldSkippedFilesConstant         = "skipped_files"
	fileSystemMissingMessageConstant     = "scaffold file system not configured"
	statErrorTemplateConstant            = "unable to inspect %s: %w"
	createDirectoryErrorTemplateConstant = "unable to create directory %s: %w"
	createFileErrorTemplateConstant      = "unable to create file %s: %w"
)

// ErrFileSystemNotConfigured indicates the service was built without a file system.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// Options configures a scaffolding run.
type Options struct {
	// Root is the directory the layout is created in.
	Root string
	// Paths are slash-separated entries relative to Root, as produced by Layout.
	Paths []string
}

// Result lists what a run created and what it left untouched. Paths are relative to the root.
type Result struct {
	CreatedDirectories []string
	CreatedFiles       []string
	SkippedFiles       []string
}

// Service creates project skeletons.
type Service struct {
	logger     *zap.Logger
	fileSystem FileSystem
}

// NewService constructs a Service; a nil logger disables logging.
func NewService(logger *zap.Logger, fileSystem FileSystem) (*Service, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger.Named(loggerNameConstant), fileSystem: fileSystem}, nil
}

// Scaffold creates every missing directory and file listed in options.
// Existing entries are logged and left untouched, so repeated runs create nothing new.
func (service *Service) Scaffold(executionContext context.Context, options Options) (Result, error) {
	result := Result{}
	createdDirectories := make(map[string]struct{})

	for _, relativePath := range options.Paths {
		if contextError := executionContext.Err(); contextError != nil {
			return result, contextError
		}

		directoryPart, fileName := path.Split(relativePath)
		directoryPart = path.Clean(directoryPart)

		if directoryPart != "." {
			created, directoryError := service.ensureDirectory(options.Root, directoryPart)
			if directoryError != nil {
				return result, directoryError
			}
			if created {
				if _, recorded := createdDirectories[directoryPart]; !recorded {
					createdDirectories[directoryPart] = struct{}{}
					result.CreatedDirectories = append(result.CreatedDirectories, directoryPart)
				}
				service.logger.Info(creatingDirectoryMessageConstant, zap.String(logFieldDirectoryConstant, directoryPart), zap.String(logFieldFileConstant, fileName))
			}
		}

		created, fileError := service.ensureFile(options.Root, relativePath)
		if fileError != nil {
			return result, fileError
		}
		if created {
			result.CreatedFiles = append(result.CreatedFiles, relativePath)
		} else {
			result.SkippedFiles = append(result.SkippedFiles, relativePath)
		}
	}

	service.logger.Info(
		scaffoldCompletedMessageConstant,
		zap.String(logFieldRootConstant, options.Root),
		zap.Int(logFieldCreatedFilesConstant, len(result.CreatedFiles)),
		zap.Int(logFieldSkippedFilesConstant, len(result.SkippedFiles)),
	)

	return result, nil
}

func (service *Service) ensureDirectory(root string, relativeDirectory string) (bool, error) {
	absoluteDirectory := filepath.Join(root, filepath.FromSlash(relativeDirectory))

	_, statError := service.fileSystem.Stat(absoluteDirectory)
	switch {
	case statError == nil:
		return false, nil
	case !errors.Is(statError, fs.ErrNotExist):
		return false, fmt.Errorf(statErrorTemplateConstant, absoluteDirectory, statError)
	}

	if createError := service.fileSystem.MkdirAll(absoluteDirectory, directoryPermissionsConstant); createError != nil {
		return false, fmt.Errorf(createDirectoryErrorTemplateConstant, absoluteDirectory, createError)
	}
	return true, nil
}

func (service *Service) ensureFile(root string, relativePath string) (bool, error) {
	absolutePath := filepath.Join(root, filepath.FromSlash(relativePath))

	fileInfo, statError := service.fileSystem.Stat(absolutePath)
	if statError != nil && !errors.Is(statError, fs.ErrNotExist) {
		return false, fmt.Errorf(statErrorTemplateConstant, absolutePath, statError)
	}

	if statError == nil {
		service.logger.Info(
			fileAlreadyExistsMessageConstant,
			zap.String(logFieldPathConstant, relativePath),
			zap.String(logFieldSizeConstant, humanize.IBytes(uint64(fileInfo.Size()))),
		)
		return false, nil
	}

	if writeError := service.fileSystem.WriteFile(absolutePath, nil, filePermissionsConstant); writeError != nil {
		return false, fmt.Errorf(createFileErrorTemplateConstant, absolutePath, writeError)
	}
	service.logger.Info(creatingEmptyFileMessageConstant, zap.String(logFieldPathConstant, relativePath))
	return true, nil
}
