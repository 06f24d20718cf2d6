package internal

import (
	"regexp"
	"strings"
)

// DelimiterSet holds the three configurable tag delimiter characters.
// All markers recognized by the scanner are derived from these.
type DelimiterSet struct {
	Open  string // Opening character (default: "<")
	Close string // Closing character (default: ">")
	Delim string // Delimiter character (default: "%")
}

// DefaultDelimiterSet returns the default delimiter configuration
func DefaultDelimiterSet() DelimiterSet {
	return DelimiterSet{
		Open:  DefaultOpenDelim,
		Close: DefaultCloseDelim,
		Delim: DefaultDelim,
	}
}

// WithDefaults fills any unset field with its default character
func (d DelimiterSet) WithDefaults() DelimiterSet {
	if d.Open == "" {
		d.Open = DefaultOpenDelim
	}
	if d.Close == "" {
		d.Close = DefaultCloseDelim
	}
	if d.Delim == "" {
		d.Delim = DefaultDelim
	}
	return d
}

// EvalOpen returns the plain opening marker (e.g. "<%")
func (d DelimiterSet) EvalOpen() string { return d.Open + d.Delim }

// TrimOpen returns the whitespace-slurping opening marker (e.g. "<%_")
func (d DelimiterSet) TrimOpen() string { return d.Open + d.Delim + "_" }

// EscapedOpen returns the escaped-output opening marker (e.g. "<%=")
func (d DelimiterSet) EscapedOpen() string { return d.Open + d.Delim + "=" }

// RawOpen returns the raw-output opening marker (e.g. "<%-")
func (d DelimiterSet) RawOpen() string { return d.Open + d.Delim + "-" }

// CommentOpen returns the comment opening marker (e.g. "<%#")
func (d DelimiterSet) CommentOpen() string { return d.Open + d.Delim + "#" }

// LiteralOpen returns the doubled-delimiter literal escape marker (e.g. "<%%")
func (d DelimiterSet) LiteralOpen() string { return d.Open + d.Delim + d.Delim }

// LiteralClose returns the doubled-delimiter literal close marker (e.g. "%%>")
func (d DelimiterSet) LiteralClose() string { return d.Delim + d.Delim + d.Close }

// CloseTag returns the plain closing marker (e.g. "%>")
func (d DelimiterSet) CloseTag() string { return d.Delim + d.Close }

// TrimClose returns the newline-trimming closing marker (e.g. "-%>")
func (d DelimiterSet) TrimClose() string { return "-" + d.Delim + d.Close }

// SlurpClose returns the whitespace-slurping closing marker (e.g. "_%>")
func (d DelimiterSet) SlurpClose() string { return "_" + d.Delim + d.Close }

// Pattern compiles the scanning pattern recognizing every marker.
// Alternatives are ordered longest/most-specific first so that the
// doubled-delimiter escape markers win over the plain opening marker
// sharing their prefix. Go's regexp alternation is leftmost-first, so
// ordering alone enforces the priority. Construction always succeeds,
// including when the three characters coincide.
func (d DelimiterSet) Pattern() *regexp.Regexp {
	alternatives := []string{
		d.LiteralOpen(),
		d.LiteralClose(),
		d.EscapedOpen(),
		d.RawOpen(),
		d.TrimOpen(),
		d.CommentOpen(),
		d.EvalOpen(),
		d.CloseTag(),
		d.TrimClose(),
		d.SlurpClose(),
	}
	quoted := make([]string, len(alternatives))
	for i, alt := range alternatives {
		quoted[i] = regexp.QuoteMeta(alt)
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// IsOpenMarker reports whether s is an opening marker that requires a
// matching close marker. The doubled-delimiter literal escape is excluded
// since it is self-closing.
func (d DelimiterSet) IsOpenMarker(s string) bool {
	return strings.HasPrefix(s, d.EvalOpen()) && !strings.HasPrefix(s, d.LiteralOpen())
}

// IsCloseMarker reports whether s is one of the three closing markers
func (d DelimiterSet) IsCloseMarker(s string) bool {
	return s == d.CloseTag() || s == d.TrimClose() || s == d.SlurpClose()
}
