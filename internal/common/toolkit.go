package common

import (
	"errors"

	"go.uber.org/zap"
)

const (
	loggerNameConstant              = "common"
	logFieldPathConstant            = "path"
	directoryPermissionsConstant    = 0o755
	filePermissionsConstant         = 0o644
	emptyDocumentMessageConstant    = "yaml document is empty"
	readFileErrorTemplateConstant   = "unable to read %s: %w"
	writeFileErrorTemplateConstant  = "unable to write %s: %w"
	decodeErrorTemplateConstant     = "unable to decode %s: %w"
	encodeErrorTemplateConstant     = "unable to encode %s: %w"
	validationErrorTemplateConstant = "invalid document %s: %w"
)

// ErrEmptyDocument reports a YAML document without content.
var ErrEmptyDocument = errors.New(emptyDocumentMessageConstant)

// Validator is implemented by configuration targets that check themselves after decoding.
type Validator interface {
	Validate() error
}

// Toolkit performs file helper operations and logs each completed step.
type Toolkit struct {
	logger *zap.Logger
}

// NewToolkit constructs a Toolkit; a nil logger disables logging.
func NewToolkit(logger *zap.Logger) *Toolkit {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Toolkit{logger: logger.Named(loggerNameConstant)}
}
