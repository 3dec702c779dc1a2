package artifacts

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/cnnkit/internal/common"
)

const (
	sizeCommandUseConstant                = "artifact-size <path>..."
	sizeCommandShortDescriptionConstant   = "Report the approximate size of files"
	sizeCommandLongDescriptionConstant    = "artifact-size prints the size of each file rounded to kilobytes, or in IEC units with --human."
	encodeCommandUseConstant              = "image-encode <path>"
	encodeCommandShortDescriptionConstant = "Print an image file as base64 text"
	decodeCommandUseConstant              = "image-decode [encoded]"
	decodeCommandShortDescriptionConstant = "Write base64 image text to a file"
	decodeCommandLongDescriptionConstant  = "image-decode decodes the base64 argument, or standard input when it is omitted, and writes the bytes to --output."
	flagHumanNameConstant                 = "human"
	flagHumanDescriptionConstant          = "Print sizes in IEC units"
	flagOutputNameConstant                = "output"
	flagOutputDescriptionConstant         = "File receiving the decoded bytes"
	sizeLineTemplateConstant              = "%s: %s\n"
	missingOutputMessageConstant          = "image-decode requires --output"
	readInputErrorTemplateConstant        = "unable to read encoded image: %w"
	sizeErrorTemplateConstant             = "artifact size failed: %w"
	encodeErrorTemplateConstant           = "image encode failed: %w"
	decodeErrorTemplateConstant           = "image decode failed: %w"
)

var errMissingOutput = errors.New(missingOutputMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the artifact helper commands.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the artifact-size, image-encode and image-decode commands.
func (builder *CommandBuilder) Build() ([]*cobra.Command, error) {
	sizeCommand := &cobra.Command{
		Use:   sizeCommandUseConstant,
		Short: sizeCommandShortDescriptionConstant,
		Long:  sizeCommandLongDescriptionConstant,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.runSize,
	}
	sizeCommand.Flags().Bool(flagHumanNameConstant, false, flagHumanDescriptionConstant)

	encodeCommand := &cobra.Command{
		Use:   encodeCommandUseConstant,
		Short: encodeCommandShortDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.runEncode,
	}

	decodeCommand := &cobra.Command{
		Use:   decodeCommandUseConstant,
		Short: decodeCommandShortDescriptionConstant,
		Long:  decodeCommandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.runDecode,
	}
	decodeCommand.Flags().String(flagOutputNameConstant, "", flagOutputDescriptionConstant)

	return []*cobra.Command{sizeCommand, encodeCommand, decodeCommand}, nil
}

func (builder *CommandBuilder) runSize(command *cobra.Command, arguments []string) error {
	toolkit := common.NewToolkit(builder.resolveLogger())
	humanReadable, _ := command.Flags().GetBool(flagHumanNameConstant)

	measure := toolkit.GetSize
	if humanReadable {
		measure = toolkit.HumanSize
	}

	for _, path := range arguments {
		size, sizeError := measure(path)
		if sizeError != nil {
			return fmt.Errorf(sizeErrorTemplateConstant, sizeError)
		}
		fmt.Fprintf(command.OutOrStdout(), sizeLineTemplateConstant, path, size)
	}
	return nil
}

func (builder *CommandBuilder) runEncode(command *cobra.Command, arguments []string) error {
	encoded, encodeError := common.NewToolkit(builder.resolveLogger()).EncodeImageIntoBase64(arguments[0])
	if encodeError != nil {
		return fmt.Errorf(encodeErrorTemplateConstant, encodeError)
	}
	fmt.Fprintln(command.OutOrStdout(), encoded)
	return nil
}

func (builder *CommandBuilder) runDecode(command *cobra.Command, arguments []string) error {
	outputPath, _ := command.Flags().GetString(flagOutputNameConstant)
	outputPath = strings.TrimSpace(outputPath)
	if len(outputPath) == 0 {
		return errMissingOutput
	}

	var encoded string
	if len(arguments) == 1 {
		encoded = arguments[0]
	} else {
		standardInput, readError := io.ReadAll(command.InOrStdin())
		if readError != nil {
			return fmt.Errorf(readInputErrorTemplateConstant, readError)
		}
		encoded = string(standardInput)
	}

	if decodeError := common.NewToolkit(builder.resolveLogger()).DecodeImage(encoded, outputPath); decodeError != nil {
		return fmt.Errorf(decodeErrorTemplateConstant, decodeError)
	}
	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
