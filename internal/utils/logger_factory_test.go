package utils_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/cnnkit/internal/utils"
)

const (
	testLoggerFactoryCaseSupportedFormatConstant   = "supported_log_level_%s_format_%s"
	testLoggerFactoryCaseUnsupportedLevelConstant  = "unsupported_log_level"
	testLoggerFactoryCaseUnsupportedFormatConstant = "unsupported_log_format"
	testLoggerFactorySubtestTemplateConstant       = "%d_%s"
	testInvalidLogLevelConstant                    = "invalid"
	testInvalidLogFormatConstant                   = "invalid"
	testLogMessageConstant                         = "logger_factory_test_message"
	testLoggerNameConstant                         = "cnnkit"
	testChildLoggerNameConstant                    = "scaffold"
	testLogFileRelativePathConstant                = "logs/running_logs.log"
)

var textLinePattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}: INFO: cnnkit\.scaffold: logger_factory_test_message\]$`)

func TestLoggerFactoryCreateLoggerOutputs(testInstance *testing.T) {
	testCases := []struct {
		name                string
		requestedLogLevel   utils.LogLevel
		requestedLogFormat  utils.LogFormat
		expectError         bool
		expectStructuredLog bool
	}{
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelDebug, utils.LogFormatStructured),
			requestedLogLevel:   utils.LogLevelDebug,
			requestedLogFormat:  utils.LogFormatStructured,
			expectStructuredLog: true,
		},
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelInfo, utils.LogFormatStructured),
			requestedLogLevel:   utils.LogLevelInfo,
			requestedLogFormat:  utils.LogFormatStructured,
			expectStructuredLog: true,
		},
		{
			name:               fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelInfo, utils.LogFormatConsole),
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormatConsole,
		},
		{
			name:               fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelWarn, utils.LogFormatText),
			requestedLogLevel:  utils.LogLevelWarn,
			requestedLogFormat: utils.LogFormatText,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedLevelConstant,
			requestedLogLevel:  utils.LogLevel(testInvalidLogLevelConstant),
			requestedLogFormat: utils.LogFormatStructured,
			expectError:        true,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedFormatConstant,
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormat(testInvalidLogFormatConstant),
			expectError:        true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testLoggerFactorySubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			loggerFactory := utils.NewLoggerFactory()
			capturedOutput := &bytes.Buffer{}

			outputs, creationError := loggerFactory.CreateLoggerOutputs(utils.LoggerConfiguration{
				Level:  testCase.requestedLogLevel,
				Format: testCase.requestedLogFormat,
				Output: capturedOutput,
			})

			if testCase.expectError {
				require.Error(testInstance, creationError)
				require.Nil(testInstance, outputs.DiagnosticLogger)
				return
			}

			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, outputs.DiagnosticLogger)

			outputs.DiagnosticLogger.Warn(testLogMessageConstant)
			require.NoError(testInstance, outputs.DiagnosticLogger.Sync())
			require.NoError(testInstance, outputs.Close())

			trimmedOutput := bytes.TrimSpace(capturedOutput.Bytes())
			require.NotEmpty(testInstance, trimmedOutput)
			require.Contains(testInstance, string(trimmedOutput), testLogMessageConstant)
			require.Equal(testInstance, testCase.expectStructuredLog, json.Valid(trimmedOutput))
		})
	}
}

func TestLoggerFactoryTextFormatLine(testInstance *testing.T) {
	capturedOutput := &bytes.Buffer{}
	outputs, creationError := utils.NewLoggerFactory().CreateLoggerOutputs(utils.LoggerConfiguration{
		Level:  utils.LogLevelInfo,
		Format: utils.LogFormatText,
		Name:   testLoggerNameConstant,
		Output: capturedOutput,
	})
	require.NoError(testInstance, creationError)

	outputs.DiagnosticLogger.Named(testChildLoggerNameConstant).Info(testLogMessageConstant)

	line := strings.TrimSuffix(capturedOutput.String(), "\n")
	require.Regexp(testInstance, textLinePattern, line)
}

func TestLoggerFactoryTextFormatAppendsFields(testInstance *testing.T) {
	capturedOutput := &bytes.Buffer{}
	outputs, creationError := utils.NewLoggerFactory().CreateLoggerOutputs(utils.LoggerConfiguration{
		Level:  utils.LogLevelInfo,
		Format: utils.LogFormatText,
		Output: capturedOutput,
	})
	require.NoError(testInstance, creationError)

	outputs.DiagnosticLogger.Info(testLogMessageConstant, zap.String("path", "params.yaml"))

	require.True(testInstance, strings.HasSuffix(capturedOutput.String(), `{"path": "params.yaml"}]`+"\n"))
}

func TestLoggerFactoryWritesLogFile(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), testLogFileRelativePathConstant)
	capturedOutput := &bytes.Buffer{}

	outputs, creationError := utils.NewLoggerFactory().CreateLoggerOutputs(utils.LoggerConfiguration{
		Level:    utils.LogLevelInfo,
		Format:   utils.LogFormatText,
		Name:     testLoggerNameConstant,
		FilePath: logFilePath,
		Output:   capturedOutput,
	})
	require.NoError(testInstance, creationError)
	require.Equal(testInstance, logFilePath, outputs.LogFilePath)

	outputs.DiagnosticLogger.Info(testLogMessageConstant)
	outputs.DiagnosticLogger.Debug("suppressed_below_level")
	require.NoError(testInstance, outputs.Close())

	fileContent, readError := os.ReadFile(logFilePath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, capturedOutput.String(), string(fileContent))
	require.NotContains(testInstance, string(fileContent), "suppressed_below_level")
}

func TestLoggerFactoryCreateLoggerRejectsUnknownLevel(testInstance *testing.T) {
	logger, creationError := utils.NewLoggerFactory().CreateLogger(utils.LogLevel(testInvalidLogLevelConstant), utils.LogFormatText)
	require.Error(testInstance, creationError)
	require.Nil(testInstance, logger)
}
