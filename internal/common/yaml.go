package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	yamlNullTagConstant           = "!!null"
	yamlLoadedMessageConstant     = "yaml file loaded"
	emptyDocumentTemplateConstant = "%s: %w"
)

// ReadYAML decodes the YAML document at path into target.
// Empty, comment-only and null documents yield ErrEmptyDocument. When target
// implements Validator it is validated before returning.
func (toolkit *Toolkit) ReadYAML(path string, target any) error {
	content, readError := os.ReadFile(path)
	if readError != nil {
		return fmt.Errorf(readFileErrorTemplateConstant, path, readError)
	}

	var document yaml.Node
	if decodeError := yaml.NewDecoder(bytes.NewReader(content)).Decode(&document); decodeError != nil {
		if errors.Is(decodeError, io.EOF) {
			return fmt.Errorf(emptyDocumentTemplateConstant, path, ErrEmptyDocument)
		}
		return fmt.Errorf(decodeErrorTemplateConstant, path, decodeError)
	}

	if isNullDocument(&document) {
		return fmt.Errorf(emptyDocumentTemplateConstant, path, ErrEmptyDocument)
	}

	if decodeError := document.Decode(target); decodeError != nil {
		return fmt.Errorf(decodeErrorTemplateConstant, path, decodeError)
	}

	if validator, validatable := target.(Validator); validatable {
		if validationError := validator.Validate(); validationError != nil {
			return fmt.Errorf(validationErrorTemplateConstant, path, validationError)
		}
	}

	toolkit.logger.Info(yamlLoadedMessageConstant, zap.String(logFieldPathConstant, path))
	return nil
}

func isNullDocument(document *yaml.Node) bool {
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return true
	}
	root := document.Content[0]
	return root.Kind == yaml.ScalarNode && root.Tag == yamlNullTagConstant
}
