package templet

// Version is the library version, reported by the CLI version command.
const Version = "0.2.0"

// Default option values
const (
	DefaultDelimiter      = "%"
	DefaultOpenDelimiter  = "<"
	DefaultCloseDelimiter = ">"
	DefaultLocalsName     = "locals"
	DefaultRootDir        = "/"
	DefaultTemplateExt    = ".tpl"
)

// FallbackTemplateName is used in error excerpts when no filename is known
const FallbackTemplateName = "templet"

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgInvalidIdentifier     = "option is not a valid identifier"
	ErrMsgCacheRequiresFilename = "cache option requires a filename"
	ErrMsgIncludeNotFound       = "could not find the include file"
	ErrMsgMissingFilename       = "relative include requires the filename option"
	ErrMsgProgramParse          = "generated program failed to parse"
	ErrMsgReadFileFailed        = "could not read template file"
	ErrMsgStoredNotFound        = "stored template not found"
	ErrMsgNoStorage             = "no template storage configured"
)

// Error format constants
const (
	FmtProgramParseHint = "%s while compiling the template\n\nIf the error above is not helpful, try validating the embedded code with the Risor CLI: https://github.com/risor-io/risor"
	FmtProgramParseFile = "%s in %s"
	FmtRenderContext    = "%s:%d\n%s\n\n%s"
)

// Error code constants for categorization
const (
	ErrCodeCompile = "TEMPLET_COMPILE"
	ErrCodeOptions = "TEMPLET_OPTIONS"
	ErrCodeInclude = "TEMPLET_INCLUDE"
	ErrCodeRender  = "TEMPLET_RENDER"
	ErrCodeStorage = "TEMPLET_STORAGE"
)

// Metadata key constants
const (
	MetaKeyOption       = "option"
	MetaKeyValue        = "value"
	MetaKeyPath         = "path"
	MetaKeyFilename     = "filename"
	MetaKeyLine         = "line"
	MetaKeyTemplateName = "template_name"
)

// Log message constants
const (
	LogMsgEngineCreated   = "engine created"
	LogMsgCompileStart    = "starting template compile"
	LogMsgCompileEnd      = "template compile complete"
	LogMsgCacheHit        = "compiled template cache hit"
	LogMsgGeneratedSource = "generated program source"
	LogMsgRenderStart     = "starting render"
	LogMsgRenderEnd       = "render complete"
	LogMsgIncludeResolved = "include path resolved"
)

// Log field constants
const (
	LogFieldFilename     = "filename"
	LogFieldSourceLen    = "source_length"
	LogFieldProgram      = "program"
	LogFieldProgramLen   = "program_length"
	LogFieldOutputLen    = "output_length"
	LogFieldPath         = "path"
	LogFieldResolvedPath = "resolved_path"
	LogFieldTemplateName = "template_name"
)
