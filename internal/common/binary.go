package common

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

const (
	binarySavedMessageConstant        = "binary file saved"
	binaryLoadedMessageConstant       = "binary file loaded"
	createFileErrorTemplateConstant   = "unable to create %s: %w"
	compressorErrorTemplateConstant   = "unable to create zstd writer for %s: %w"
	decompressorErrorTemplateConstant = "unable to create zstd reader for %s: %w"
	closeFileErrorTemplateConstant    = "unable to close %s: %w"
)

// SaveBinary persists data at path as a gob stream inside a zstd frame.
func (toolkit *Toolkit) SaveBinary(data any, path string) (saveError error) {
	file, createError := os.Create(path)
	if createError != nil {
		return fmt.Errorf(createFileErrorTemplateConstant, path, createError)
	}
	defer func() {
		if closeError := file.Close(); closeError != nil && saveError == nil {
			saveError = fmt.Errorf(closeFileErrorTemplateConstant, path, closeError)
		}
	}()

	compressor, compressorError := zstd.NewWriter(file)
	if compressorError != nil {
		return fmt.Errorf(compressorErrorTemplateConstant, path, compressorError)
	}

	if encodeError := gob.NewEncoder(compressor).Encode(data); encodeError != nil {
		_ = compressor.Close()
		return fmt.Errorf(encodeErrorTemplateConstant, path, encodeError)
	}

	if closeError := compressor.Close(); closeError != nil {
		return fmt.Errorf(writeFileErrorTemplateConstant, path, closeError)
	}

	toolkit.logger.Info(binarySavedMessageConstant, zap.String(logFieldPathConstant, path))
	return nil
}

// LoadBinary decodes a file written by SaveBinary into target, which must be a pointer.
func (toolkit *Toolkit) LoadBinary(path string, target any) error {
	file, openError := os.Open(path)
	if openError != nil {
		return fmt.Errorf(readFileErrorTemplateConstant, path, openError)
	}
	defer file.Close()

	decompressor, decompressorError := zstd.NewReader(file)
	if decompressorError != nil {
		return fmt.Errorf(decompressorErrorTemplateConstant, path, decompressorError)
	}
	defer decompressor.Close()

	if decodeError := gob.NewDecoder(decompressor).Decode(target); decodeError != nil {
		return fmt.Errorf(decodeErrorTemplateConstant, path, decodeError)
	}

	toolkit.logger.Info(binaryLoadedMessageConstant, zap.String(logFieldPathConstant, path))
	return nil
}
