// Package artifacts exposes the common file helpers as commands: file size
// reporting and base64 image transcoding.
package artifacts
