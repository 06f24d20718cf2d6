package templet

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// NewInvalidIdentifierError reports an option whose value must be a valid
// identifier in the generated program but is not. Raised during
// compilation, before any program construction.
func NewInvalidIdentifierError(option, value string) error {
	return cuserr.NewValidationError(ErrCodeOptions,
		fmt.Sprintf("%s: %s", option, ErrMsgInvalidIdentifier)).
		WithMetadata(MetaKeyOption, option).
		WithMetadata(MetaKeyValue, value)
}

// NewCacheRequiresFilenameError reports Cache=true without a Filename
func NewCacheRequiresFilenameError() error {
	return cuserr.NewValidationError(ErrCodeOptions, ErrMsgCacheRequiresFilename)
}

// NewIncludeNotFoundError reports an include path that resolved nowhere.
// The message names the escaped original path.
func NewIncludeNotFoundError(path string, escape EscapeFunc) error {
	escaped := escape(path)
	return cuserr.NewNotFoundError(MetaKeyPath,
		fmt.Sprintf("%s %q", ErrMsgIncludeNotFound, escaped)).
		WithMetadata(MetaKeyPath, escaped)
}

// NewMissingFilenameError reports a relative include attempted without
// the filename option and with no other way to resolve it.
func NewMissingFilenameError(path string) error {
	return cuserr.NewValidationError(ErrCodeInclude,
		fmt.Sprintf("%s: %q", ErrMsgMissingFilename, path)).
		WithMetadata(MetaKeyPath, path)
}

// NewProgramParseError wraps a parse failure of the generated program.
// The message is augmented with the filename when known and a pointer to
// an external linting tool for the embedded code.
func NewProgramParseError(cause error, filename string) error {
	msg := ErrMsgProgramParse
	if filename != "" {
		msg = fmt.Sprintf(FmtProgramParseFile, msg, filename)
	}
	msg = fmt.Sprintf(FmtProgramParseHint, msg)
	err := cuserr.WrapStdError(cause, ErrCodeCompile, msg)
	if filename != "" {
		return err.WithMetadata(MetaKeyFilename, filename)
	}
	return err
}

// NewReadFileError reports a template file that could not be read
func NewReadFileError(cause error, path string) error {
	return cuserr.WrapStdError(cause, ErrCodeInclude,
		fmt.Sprintf("%s %q", ErrMsgReadFileFailed, path)).
		WithMetadata(MetaKeyPath, path)
}

// NewStoredTemplateNotFoundError reports a storage lookup miss
func NewStoredTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplateName,
		fmt.Sprintf("%s: %q", ErrMsgStoredNotFound, name)).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewNoStorageError reports a storage operation on an engine without a
// configured storage backend
func NewNoStorageError() error {
	return cuserr.NewValidationError(ErrCodeStorage, ErrMsgNoStorage)
}

// newRenderContextError decorates an execution failure with the
// template-relative source context produced by the contextualizer.
func newRenderContextError(cause error, message, escapedFilename string, lineno int) error {
	return cuserr.WrapStdError(cause, ErrCodeRender, message).
		WithMetadata(MetaKeyPath, escapedFilename).
		WithMetadata(MetaKeyLine, strconv.Itoa(lineno))
}
