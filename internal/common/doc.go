// Package common provides the file helpers shared by the classifier project:
// YAML and JSON documents, binary artifacts, directory creation, file size
// reporting and base64 image transcoding.
//
// Every helper is a method on Toolkit, which carries the injected logger.
package common
