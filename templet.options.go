package templet

import "github.com/itsatony/go-templet/internal"

// IncludeResult is what a custom Includer returns: either the resolved
// filename of a template file, or inline template text. Exactly one of
// the two should be set; Template wins when both are.
type IncludeResult struct {
	Filename string
	Template string
}

// IncluderFunc is a custom include resolver. It receives the original
// include path as written in the template and the best-effort resolved
// path (empty when standard resolution found nothing). Returning a zero
// IncludeResult keeps the resolved path.
type IncluderFunc func(originalPath, resolvedPath string) (IncludeResult, error)

// Options configures a single compile call. All fields are optional; a
// nil *Options means DefaultOptions(). Zero-value string fields are
// back-filled with their defaults, so a partially filled literal works.
// Note that a non-nil Options literal has CompileDebug=false; start from
// DefaultOptions() to keep line tracking enabled.
type Options struct {
	// Delimiter is the tag delimiter character (default "%").
	Delimiter string
	// OpenDelimiter is the tag opening character (default "<").
	OpenDelimiter string
	// CloseDelimiter is the tag closing character (default ">").
	CloseDelimiter string
	// Filename names the template, used for caching, relative include
	// resolution, and error excerpts.
	Filename string
	// Root is the directory (or ordered list of directories) absolute
	// include paths resolve against. Default: "/".
	Root []string
	// Views is an ordered list of directories searched for relative
	// includes after the including file's own directory.
	Views []string
	// RmWhitespace collapses line-ending runs and strips per-line
	// leading/trailing whitespace before scanning.
	RmWhitespace bool
	// CompileDebug emits line-tracking statements so execution failures
	// can be mapped back to template lines. DefaultOptions sets it true.
	CompileDebug bool
	// Debug logs the generated program source through the engine logger.
	Debug bool
	// Escape is applied to escaped-output tag values. Default: XMLEscape.
	Escape EscapeFunc
	// OutputFunctionName, when set, binds that name to the append helper
	// inside the generated program. Must be a valid identifier.
	OutputFunctionName string
	// LocalsName is the name the data context is bound under inside the
	// generated program. Must be a valid identifier. Default "locals".
	LocalsName string
	// Cache stores the compiled template in the engine cache, keyed by
	// Filename. Requires Filename to be set. Entries are never
	// invalidated when the underlying file changes.
	Cache bool
	// Includer overrides include resolution.
	Includer IncluderFunc
}

// DefaultOptions returns the default compile options
func DefaultOptions() *Options {
	return &Options{
		Delimiter:      DefaultDelimiter,
		OpenDelimiter:  DefaultOpenDelimiter,
		CloseDelimiter: DefaultCloseDelimiter,
		CompileDebug:   true,
		Escape:         XMLEscape,
		LocalsName:     DefaultLocalsName,
	}
}

// normalized returns a defensive copy with defaults filled in
func (o *Options) normalized() *Options {
	if o == nil {
		return DefaultOptions()
	}
	c := *o
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
	if c.OpenDelimiter == "" {
		c.OpenDelimiter = DefaultOpenDelimiter
	}
	if c.CloseDelimiter == "" {
		c.CloseDelimiter = DefaultCloseDelimiter
	}
	if c.Escape == nil {
		c.Escape = XMLEscape
	}
	if c.LocalsName == "" {
		c.LocalsName = DefaultLocalsName
	}
	c.Root = append([]string(nil), o.Root...)
	c.Views = append([]string(nil), o.Views...)
	return &c
}

// validate checks the identifier-valued options and the cache contract.
// This runs before any program construction so naming problems surface
// as compile-time errors, not runtime syntax failures.
func (o *Options) validate() error {
	if o.OutputFunctionName != "" && !internal.ValidIdentifier(o.OutputFunctionName) {
		return NewInvalidIdentifierError("outputFunctionName", o.OutputFunctionName)
	}
	if !internal.ValidIdentifier(o.LocalsName) {
		return NewInvalidIdentifierError("localsName", o.LocalsName)
	}
	if o.Cache && o.Filename == "" {
		return NewCacheRequiresFilenameError()
	}
	return nil
}

// forInclude derives the options an included template compiles with:
// everything carries over except the filename, which the resolver sets.
func (o *Options) forInclude() *Options {
	c := *o
	c.Filename = ""
	c.Root = append([]string(nil), o.Root...)
	c.Views = append([]string(nil), o.Views...)
	return &c
}

// delims builds the delimiter set from the configured characters
func (o *Options) delims() internal.DelimiterSet {
	return internal.DelimiterSet{
		Open:  o.OpenDelimiter,
		Close: o.CloseDelimiter,
		Delim: o.Delimiter,
	}
}
