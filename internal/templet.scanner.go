package internal

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

// Token is a single span of template text, either literal text or a
// delimiter marker. Concatenating the Text of every scanned token
// reproduces the scanner input exactly.
type Token struct {
	Kind TokenKind
	Text string
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	return fmt.Sprintf("Token{%s: %q}", t.Kind, t.Text)
}

var (
	reLineEndings = regexp.MustCompile(`[\r\n]+`)
	reEdgeSpace   = regexp.MustCompile(`(?m)^\s+|\s+$`)
)

// Scanner splits template text into an ordered token sequence using the
// configured delimiter set.
type Scanner struct {
	delims       DelimiterSet
	rmWhitespace bool
	pattern      *regexp.Regexp
	logger       *zap.Logger
}

// NewScanner creates a scanner for the given delimiter configuration
func NewScanner(delims DelimiterSet, rmWhitespace bool, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	delims = delims.WithDefaults()
	logger.Debug(LogMsgScannerCreated)
	return &Scanner{
		delims:       delims,
		rmWhitespace: rmWhitespace,
		pattern:      delims.Pattern(),
		logger:       logger,
	}
}

// Normalize applies the pre-scan text transformations: optional
// whitespace removal (collapse line-ending runs to a single newline and
// strip leading/trailing whitespace on every line), and the
// unconditional slurping of horizontal whitespace before a trim-open
// marker and after a trim-close marker.
func (s *Scanner) Normalize(text string) string {
	if s.rmWhitespace {
		text = reLineEndings.ReplaceAllString(text, "\n")
		text = reEdgeSpace.ReplaceAllString(text, "")
	}
	trimOpen := s.delims.TrimOpen()
	slurpClose := s.delims.SlurpClose()
	reBefore := regexp.MustCompile(`[ \t]*` + regexp.QuoteMeta(trimOpen))
	reAfter := regexp.MustCompile(regexp.QuoteMeta(slurpClose) + `[ \t]*`)
	text = reBefore.ReplaceAllString(text, trimOpen)
	text = reAfter.ReplaceAllString(text, slurpClose)
	return text
}

// Scan splits text into tokens. The caller is expected to pass text that
// has already been through Normalize. An empty input yields a nil slice.
func (s *Scanner) Scan(text string) []Token {
	s.logger.Debug(LogMsgScanStart, zap.Int(LogFieldSource, len(text)))
	var tokens []Token
	rest := text
	for {
		loc := s.pattern.FindStringIndex(rest)
		if loc == nil {
			break
		}
		if loc[0] > 0 {
			tokens = append(tokens, Token{Kind: TokenText, Text: rest[:loc[0]]})
		}
		tokens = append(tokens, Token{Kind: TokenMarker, Text: rest[loc[0]:loc[1]]})
		rest = rest[loc[1]:]
	}
	if rest != "" {
		tokens = append(tokens, Token{Kind: TokenText, Text: rest})
	}
	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens
}

// Delims returns the scanner's delimiter configuration after defaulting
func (s *Scanner) Delims() DelimiterSet {
	return s.delims
}
