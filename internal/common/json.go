package common

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

const (
	jsonIndentConstant        = "    "
	jsonSavedMessageConstant  = "json file saved"
	jsonLoadedMessageConstant = "json file loaded"
)

// SaveJSON writes data to path as JSON indented with four spaces.
func (toolkit *Toolkit) SaveJSON(path string, data any) error {
	content, marshalError := json.MarshalIndent(data, "", jsonIndentConstant)
	if marshalError != nil {
		return fmt.Errorf(encodeErrorTemplateConstant, path, marshalError)
	}
	content = append(content, '\n')

	if writeError := os.WriteFile(path, content, filePermissionsConstant); writeError != nil {
		return fmt.Errorf(writeFileErrorTemplateConstant, path, writeError)
	}

	toolkit.logger.Info(jsonSavedMessageConstant, zap.String(logFieldPathConstant, path))
	return nil
}

// LoadJSON decodes the JSON document at path into target.
func (toolkit *Toolkit) LoadJSON(path string, target any) error {
	content, readError := os.ReadFile(path)
	if readError != nil {
		return fmt.Errorf(readFileErrorTemplateConstant, path, readError)
	}

	if decodeError := json.Unmarshal(content, target); decodeError != nil {
		return fmt.Errorf(decodeErrorTemplateConstant, path, decodeError)
	}

	toolkit.logger.Info(jsonLoadedMessageConstant, zap.String(logFieldPathConstant, path))
	return nil
}
