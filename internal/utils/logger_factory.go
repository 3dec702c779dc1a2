package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	logFormatTextStringConstant          = "text"
	textTimestampLayoutConstant          = "2006-01-02 15:04:05,000"
	textLineOpeningConstant              = "["
	textLineEndingConstant               = "]\n"
	textSeparatorConstant                = ": "
	encoderTimeKeyConstant               = "time"
	encoderLevelKeyConstant              = "level"
	encoderNameKeyConstant               = "module"
	encoderMessageKeyConstant            = "message"
	encoderStacktraceKeyConstant         = "stacktrace"
	logDirectoryPermissionsConstant      = 0o755
	defaultLogMaxSizeMegabytesConstant   = 10
	defaultLogMaxBackupsConstant         = 3
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	logDirectoryErrorTemplateConstant    = "unable to create log directory %s: %w"
)

// DefaultLogFilePath is the log file location relative to the working directory.
var DefaultLogFilePath = filepath.Join("logs", "running_logs.log")

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
	LogFormatText       LogFormat = LogFormat(logFormatTextStringConstant)
)

// LoggerConfiguration describes the sinks and encoding of a logger.
type LoggerConfiguration struct {
	Level  LogLevel
	Format LogFormat
	// Name becomes the module segment of every line; components extend it with Named.
	Name string
	// FilePath enables the rotating file sink when non-empty.
	FilePath         string
	MaxSizeMegabytes int
	MaxBackups       int
	// Output receives every line in addition to the file. Defaults to os.Stdout.
	Output io.Writer
}

// LoggerOutputs bundles the constructed logger with the resources it holds.
type LoggerOutputs struct {
	DiagnosticLogger *zap.Logger
	LogFilePath      string
	fileSink         io.Closer
}

// Close releases the log file held by the outputs.
func (outputs LoggerOutputs) Close() error {
	if outputs.fileSink == nil {
		return nil
	}
	return outputs.fileSink.Close()
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct{}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

var logFormatEncoderMapping = map[LogFormat]func() zapcore.Encoder{
	LogFormatStructured: func() zapcore.Encoder {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	},
	LogFormatConsole: func() zapcore.Encoder {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	},
	LogFormatText: newTextEncoder,
}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLoggerOutputs produces a logger writing to the configured output and log file.
func (factory *LoggerFactory) CreateLoggerOutputs(configuration LoggerConfiguration) (LoggerOutputs, error) {
	zapLogLevel, levelExists := logLevelMapping[configuration.Level]
	if !levelExists {
		return LoggerOutputs{}, fmt.Errorf(unsupportedLogLevelTemplateConstant, configuration.Level)
	}

	encoderBuilder, formatExists := logFormatEncoderMapping[configuration.Format]
	if !formatExists {
		return LoggerOutputs{}, fmt.Errorf(unsupportedLogFormatTemplateConstant, configuration.Format)
	}

	output := configuration.Output
	if output == nil {
		output = os.Stdout
	}
	writeSyncers := []zapcore.WriteSyncer{zapcore.AddSync(NewFlushingWriter(output))}

	outputs := LoggerOutputs{}
	if len(configuration.FilePath) > 0 {
		logDirectory := filepath.Dir(configuration.FilePath)
		if directoryError := os.MkdirAll(logDirectory, logDirectoryPermissionsConstant); directoryError != nil {
			return LoggerOutputs{}, fmt.Errorf(logDirectoryErrorTemplateConstant, logDirectory, directoryError)
		}

		fileSink := &lumberjack.Logger{
			Filename:   configuration.FilePath,
			MaxSize:    positiveOrDefault(configuration.MaxSizeMegabytes, defaultLogMaxSizeMegabytesConstant),
			MaxBackups: positiveOrDefault(configuration.MaxBackups, defaultLogMaxBackupsConstant),
		}
		writeSyncers = append(writeSyncers, zapcore.AddSync(fileSink))
		outputs.fileSink = fileSink
		outputs.LogFilePath = configuration.FilePath
	}

	core := zapcore.NewCore(encoderBuilder(), zapcore.NewMultiWriteSyncer(writeSyncers...), zap.NewAtomicLevelAt(zapLogLevel))
	logger := zap.New(core)
	if len(configuration.Name) > 0 {
		logger = logger.Named(configuration.Name)
	}

	outputs.DiagnosticLogger = logger
	return outputs, nil
}

// CreateLogger produces a stdout-only zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	outputs, creationError := factory.CreateLoggerOutputs(LoggerConfiguration{
		Level:  requestedLogLevel,
		Format: requestedLogFormat,
	})
	if creationError != nil {
		return nil, creationError
	}
	return outputs.DiagnosticLogger, nil
}

// newTextEncoder renders lines as [timestamp: LEVEL: module: message].
func newTextEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          encoderTimeKeyConstant,
		LevelKey:         encoderLevelKeyConstant,
		NameKey:          encoderNameKeyConstant,
		MessageKey:       encoderMessageKeyConstant,
		StacktraceKey:    encoderStacktraceKeyConstant,
		LineEnding:       textLineEndingConstant,
		ConsoleSeparator: textSeparatorConstant,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       encodeBracketedTimestamp,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
	})
}

func encodeBracketedTimestamp(timestamp time.Time, encoder zapcore.PrimitiveArrayEncoder) {
	encoder.AppendString(textLineOpeningConstant + timestamp.Format(textTimestampLayoutConstant))
}

func positiveOrDefault(value int, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
