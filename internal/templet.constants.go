package internal

// TokenKind classifies a scanned template token
type TokenKind int

// Token kind constants
const (
	TokenText TokenKind = iota
	TokenMarker
)

// Token kind string names for debugging
const (
	TokenKindNameText   = "TEXT"
	TokenKindNameMarker = "MARKER"
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	if k == TokenMarker {
		return TokenKindNameMarker
	}
	return TokenKindNameText
}

// Mode represents the active template-scanning mode
type Mode int

// Scanning mode constants
const (
	ModeNone Mode = iota
	ModeEval
	ModeEscaped
	ModeRaw
	ModeComment
	ModeLiteral
)

// Mode string names for debugging
const (
	ModeNameNone    = "NONE"
	ModeNameEval    = "EVAL"
	ModeNameEscaped = "ESCAPED"
	ModeNameRaw     = "RAW"
	ModeNameComment = "COMMENT"
	ModeNameLiteral = "LITERAL"
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeEval:
		return ModeNameEval
	case ModeEscaped:
		return ModeNameEscaped
	case ModeRaw:
		return ModeNameRaw
	case ModeComment:
		return ModeNameComment
	case ModeLiteral:
		return ModeNameLiteral
	default:
		return ModeNameNone
	}
}

// Default delimiter characters
const (
	DefaultOpenDelim  = "<"
	DefaultCloseDelim = ">"
	DefaultDelim      = "%"
)

// Names of the runtime collaborators injected into the generated program.
// The generator emits calls to these; the render layer binds them as globals.
const (
	AppendName  = "__append"
	EscapeName  = "__escape"
	LineName    = "__line"
	IncludeName = "include"
)

// Log message constants
const (
	LogMsgScannerCreated   = "scanner created"
	LogMsgScanStart        = "starting template scan"
	LogMsgScanEnd          = "template scan complete"
	LogMsgGeneratorCreated = "generator created"
	LogMsgGenerateStart    = "starting source generation"
	LogMsgGenerateEnd      = "source generation complete"
)

// Log field constants
const (
	LogFieldSource = "source_length"
	LogFieldTokens = "token_count"
	LogFieldMode   = "mode"
	LogFieldLine   = "line"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgUnmatchedCloseTag = "could not find matching close tag"
)

// Error code constants for categorization
const (
	ErrCodeGenerate = "TEMPLET_COMPILE"
)

// Metadata key constants
const (
	MetaKeyTag = "tag"
)
