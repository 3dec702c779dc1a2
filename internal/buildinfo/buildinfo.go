// Package buildinfo carries the distribution metadata of the toolkit.
package buildinfo

import "fmt"

const (
	// Name is the distribution name of the classifier package.
	Name = "cnnClassifier"
	// Author is the maintainer of the upstream classifier project.
	Author          = "abhishekpatel16"
	repositoryName  = "End-to-End-Chicken-Disease-Classification-Using-Deep-Learning"
	repositoryRoot  = "https://github.com/"
	issuesSuffix    = "/issues"
	summaryTemplate = "%s %s (commit=%s, date=%s)"
)

// Overridden at link time with -ldflags "-X".
var (
	Version = "0.0.0"
	Commit  = "none"
	Date    = "unknown"
)

// RepositoryURL returns the project home page.
func RepositoryURL() string {
	return repositoryRoot + Author + "/" + repositoryName
}

// BugTrackerURL returns the issue tracker of the project.
func BugTrackerURL() string {
	return RepositoryURL() + issuesSuffix
}

// String renders a one-line version summary.
func String() string {
	return fmt.Sprintf(summaryTemplate, Name, Version, Commit, Date)
}
