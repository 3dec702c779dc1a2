// Package project loads the classifier's config/config.yaml and params.yaml
// into typed settings and exposes the project-settings command.
package project
