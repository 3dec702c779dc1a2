// Package scaffold creates the directory and file skeleton of an image
// classification project.
//
// It offers CommandBuilder for the Cobra command, Service for creating the
// layout through a FileSystem, and Layout for the static list of project paths.
package scaffold
