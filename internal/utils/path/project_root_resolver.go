package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant               = "~"
	currentDirectoryConstant          = "."
	tildeForwardSlashPrefixConstant   = "~/"
	tildeWithPathSeparatorPrefixValue = tildeSymbolConstant + string(os.PathSeparator)
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// ProjectRootResolver turns user supplied project roots into absolute, cleaned paths.
type ProjectRootResolver struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewProjectRootResolver constructs a resolver using the operating system home lookup.
func NewProjectRootResolver() *ProjectRootResolver {
	return NewProjectRootResolverWithProvider(os.UserHomeDir)
}

// NewProjectRootResolverWithProvider constructs a resolver with a custom home directory provider.
func NewProjectRootResolverWithProvider(provider HomeDirectoryProvider) *ProjectRootResolver {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &ProjectRootResolver{homeDirectoryProvider: provider}
}

// Resolve trims the candidate, expands a leading tilde, and makes the path absolute.
// An empty candidate resolves to the working directory.
func (resolver *ProjectRootResolver) Resolve(candidatePath string) (string, error) {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		trimmedPath = currentDirectoryConstant
	}
	return filepath.Abs(resolver.Expand(trimmedPath))
}

// Expand resolves leading tilde prefixes to the user's home directory.
func (resolver *ProjectRootResolver) Expand(candidatePath string) string {
	if resolver == nil || !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	homeDirectory := resolver.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	switch {
	case candidatePath == tildeSymbolConstant:
		return homeDirectory
	case strings.HasPrefix(candidatePath, tildeForwardSlashPrefixConstant):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeForwardSlashPrefixConstant))
	case strings.HasPrefix(candidatePath, tildeWithPathSeparatorPrefixValue):
		return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, tildeWithPathSeparatorPrefixValue))
	default:
		return candidatePath
	}
}

func (resolver *ProjectRootResolver) resolveHomeDirectory() string {
	resolver.initializationGuard.Do(func() {
		resolver.homeDirectory, resolver.homeDirectoryError = resolver.homeDirectoryProvider()
	})
	if resolver.homeDirectoryError != nil {
		return ""
	}
	return resolver.homeDirectory
}
