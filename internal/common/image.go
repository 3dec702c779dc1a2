package common

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

const (
	imageDecodedMessageConstant         = "image decoded"
	imageEncodedMessageConstant         = "image encoded"
	logFieldBytesConstant               = "bytes"
	malformedImageErrorTemplateConstant = "malformed base64 image data: %w"
)

// DecodeImage decodes standard base64 text and writes the bytes to fileName.
// Whitespace in the encoded text is ignored; the content is not checked for a valid image format.
func (toolkit *Toolkit) DecodeImage(encoded string, fileName string) error {
	imageData, decodeError := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(encoded), ""))
	if decodeError != nil {
		return fmt.Errorf(malformedImageErrorTemplateConstant, decodeError)
	}

	if writeError := os.WriteFile(fileName, imageData, filePermissionsConstant); writeError != nil {
		return fmt.Errorf(writeFileErrorTemplateConstant, fileName, writeError)
	}

	toolkit.logger.Debug(imageDecodedMessageConstant, zap.String(logFieldPathConstant, fileName), zap.Int(logFieldBytesConstant, len(imageData)))
	return nil
}

// EncodeImageIntoBase64 returns the content of the file at path as standard base64 text.
func (toolkit *Toolkit) EncodeImageIntoBase64(path string) (string, error) {
	imageData, readError := os.ReadFile(path)
	if readError != nil {
		return "", fmt.Errorf(readFileErrorTemplateConstant, path, readError)
	}

	toolkit.logger.Debug(imageEncodedMessageConstant, zap.String(logFieldPathConstant, path), zap.Int(logFieldBytesConstant, len(imageData)))
	return base64.StdEncoding.EncodeToString(imageData), nil
}
