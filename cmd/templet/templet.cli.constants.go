package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names
const (
	FlagOutput      = "out"
	FlagOutputShort = "o"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// File permissions for rendered output
const FilePermissions = 0o644

// Error messages - ALL must be constants
const (
	ErrMsgBadArguments    = "invalid arguments"
	ErrMsgMissingOutput   = "missing required output file flag"
	ErrMsgMissingInput    = "missing input file argument"
	ErrMsgTooManyInputs   = "expected exactly one input file argument"
	ErrMsgReadFileFailed  = "could not read input file"
	ErrMsgRenderFailed    = "render failed"
	ErrMsgWriteFailed     = "could not write output file"
	ErrMsgUnknownCommand  = "unknown command"
)

// Format strings
const (
	FmtErrorWithCause  = "error: %s: %v\n"
	FmtErrorWithDetail = "error: %s: %s\n"
)

// Help text
const (
	HelpMainUsage = `templet - compile and render embedded templates

Usage:
  templet render -o <output-file> <input-file>
  templet version
  templet help [command]`

	HelpRenderUsage = `templet render - render a template file

Usage:
  templet render -o <output-file> <input-file>

Reads the input file, renders it with default options, and writes the
result to the output file. The -o flag is required.`

	HelpVersionUsage = `templet version - print the templet version`

	HelpHelpUsage = `templet help - show usage for a command`
)
