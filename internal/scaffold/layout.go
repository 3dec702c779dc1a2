package scaffold

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const (
	// DefaultProjectName names the Python package created under src/.
	DefaultProjectName                 = "cnnClassifier"
	projectNamePlaceholderConstant     = "{project}"
	parentDirectoryConstant            = ".."
	invalidLayoutPathMessageConstant   = "layout path must be relative to the project root"
	invalidLayoutPathTemplateConstant  = "%w: %q"
	invalidProjectNameMessageConstant  = "project name must be a single path segment"
	invalidProjectNameTemplateConstant = "%w: %q"
)

// ErrInvalidLayoutPath reports a layout entry that is absolute or escapes the project root.
var ErrInvalidLayoutPath = errors.New(invalidLayoutPathMessageConstant)

// ErrInvalidProjectName reports a project name that is empty or contains separators.
var ErrInvalidProjectName = errors.New(invalidProjectNameMessageConstant)

var defaultLayoutTemplate = []string{
	".github/workflows/.gitkeep",
	"src/{project}/__init__.py",
	"src/{project}/components/__init__.py",
	"src/{project}/utils/__init__.py",
	"src/{project}/utils/common.py",
	"src/{project}/config/__init__.py",
	"src/{project}/config/configuration.py",
	"src/{project}/pipeline/__init__.py",
	"src/{project}/entity/__init__.py",
	"src/{project}/entity/config_entity.py",
	"src/{project}/constants/__init__.py",
	"config/config.yaml",
	"params.yaml",
	"main.py",
	"app.py",
	"requirements.txt",
	"setup.py",
	"research/trials.ipynb",
	"templates/index.html",
}

// Layout returns the slash-separated project paths for projectName followed by extraFiles.
// Duplicates are dropped while keeping the first occurrence.
func Layout(projectName string, extraFiles []string) ([]string, error) {
	trimmedProjectName := strings.TrimSpace(projectName)
	if len(trimmedProjectName) == 0 || strings.ContainsAny(trimmedProjectName, `/\`) || trimmedProjectName == parentDirectoryConstant {
		return nil, fmt.Errorf(invalidProjectNameTemplateConstant, ErrInvalidProjectName, projectName)
	}

	candidates := make([]string, 0, len(defaultLayoutTemplate)+len(extraFiles))
	for _, template := range defaultLayoutTemplate {
		candidates = append(candidates, strings.ReplaceAll(template, projectNamePlaceholderConstant, trimmedProjectName))
	}
	candidates = append(candidates, extraFiles...)

	layout := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		trimmedCandidate := strings.TrimSpace(strings.ReplaceAll(candidate, `\`, "/"))
		if len(trimmedCandidate) == 0 {
			continue
		}

		cleanedCandidate := path.Clean(trimmedCandidate)
		if path.IsAbs(cleanedCandidate) || cleanedCandidate == "." || cleanedCandidate == parentDirectoryConstant || strings.HasPrefix(cleanedCandidate, parentDirectoryConstant+"/") {
			return nil, fmt.Errorf(invalidLayoutPathTemplateConstant, ErrInvalidLayoutPath, candidate)
		}

		if _, alreadySeen := seen[cleanedCandidate]; alreadySeen {
			continue
		}
		seen[cleanedCandidate] = struct{}{}
		layout = append(layout, cleanedCandidate)
	}

	return layout, nil
}
