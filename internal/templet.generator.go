package internal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/itsatony/go-cuserr"
	"go.uber.org/zap"
)

// GeneratorConfig holds generator configuration
type GeneratorConfig struct {
	Delims             DelimiterSet
	CompileDebug       bool   // emit line-tracking statements
	OutputFunctionName string // optional extra binding for the append helper
}

// Generator walks the token sequence, tracks the active scanning mode,
// and synthesizes the Risor program body that reproduces the template.
// A Generator is owned by exactly one compile pass and never reused.
type Generator struct {
	config      GeneratorConfig
	mode        Mode
	truncate    bool
	currentLine int
	source      strings.Builder
	logger      *zap.Logger
}

// NewGenerator creates a generator for one compile pass
func NewGenerator(config GeneratorConfig, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	config.Delims = config.Delims.WithDefaults()
	logger.Debug(LogMsgGeneratorCreated)
	return &Generator{
		config:      config,
		mode:        ModeNone,
		currentLine: 1,
		logger:      logger,
	}
}

// NewUnmatchedCloseTagError reports an opening marker with no matching
// close marker. The message names the offending tag literal.
func NewUnmatchedCloseTagError(tag string) error {
	return cuserr.NewValidationError(ErrCodeGenerate,
		fmt.Sprintf("%s for %q", ErrMsgUnmatchedCloseTag, tag)).
		WithMetadata(MetaKeyTag, tag)
}

// Generate validates tag pairing across the whole token sequence, then
// synthesizes and returns the program body.
//
// The pairing check is deliberately shallow: each opening marker (other
// than the self-closing doubled-delimiter escape) must be followed, two
// tokens later, by one of the three close markers. This accepts some
// malformed nestings and rejects some adjacent literal-escape edge
// cases; templates in the wild rely on exactly this behavior, so it must
// not be strengthened into full bracket matching.
func (g *Generator) Generate(tokens []Token) (string, error) {
	g.logger.Debug(LogMsgGenerateStart, zap.Int(LogFieldTokens, len(tokens)))
	d := g.config.Delims
	for i, tok := range tokens {
		if tok.Kind != TokenMarker || !d.IsOpenMarker(tok.Text) {
			continue
		}
		if i+2 >= len(tokens) || !d.IsCloseMarker(tokens[i+2].Text) {
			return "", NewUnmatchedCloseTagError(tok.Text)
		}
	}
	for _, tok := range tokens {
		g.scanToken(tok)
	}
	g.logger.Debug(LogMsgGenerateEnd, zap.Int(LogFieldSource, g.source.Len()))
	return g.source.String(), nil
}

// scanToken processes a single token in the current mode
func (g *Generator) scanToken(tok Token) {
	d := g.config.Delims
	newLineCount := strings.Count(tok.Text, "\n")

	if tok.Kind == TokenMarker {
		switch tok.Text {
		case d.EvalOpen(), d.TrimOpen():
			g.mode = ModeEval
		case d.EscapedOpen():
			g.mode = ModeEscaped
		case d.RawOpen():
			g.mode = ModeRaw
		case d.CommentOpen():
			g.mode = ModeComment
		case d.LiteralOpen():
			// Self-closing: emit the de-doubled marker immediately.
			g.mode = ModeLiteral
			g.emitLiteral(d.EvalOpen())
		case d.LiteralClose():
			g.mode = ModeLiteral
			g.emitLiteral(d.CloseTag())
		case d.CloseTag(), d.TrimClose(), d.SlurpClose():
			if g.mode == ModeLiteral {
				g.addOutput(tok.Text)
			}
			g.mode = ModeNone
			g.truncate = strings.HasPrefix(tok.Text, "-") || strings.HasPrefix(tok.Text, "_")
		default:
			g.scanContent(tok.Text)
		}
	} else {
		g.scanContent(tok.Text)
	}

	if g.config.CompileDebug && newLineCount > 0 {
		g.currentLine += newLineCount
		fmt.Fprintf(&g.source, "%s(%d)\n", LineName, g.currentLine)
	}
}

// scanContent processes a content span according to the current mode
func (g *Generator) scanContent(content string) {
	if g.mode == ModeNone {
		g.addOutput(content)
		return
	}
	switch g.mode {
	case ModeEval, ModeEscaped, ModeRaw:
		// A span ending inside a line comment would swallow the next
		// synthesized statement; terminate the comment first.
		if endsInsideLineComment(content) {
			content += "\n"
		}
	}
	switch g.mode {
	case ModeEval:
		fmt.Fprintf(&g.source, "%s\n", content)
	case ModeEscaped:
		fmt.Fprintf(&g.source, "%s(%s(%s))\n", AppendName, EscapeName, stripSemi(content))
	case ModeRaw:
		fmt.Fprintf(&g.source, "%s(%s)\n", AppendName, stripSemi(content))
	case ModeComment:
		// discarded
	case ModeLiteral:
		g.addOutput(content)
	}
}

// addOutput emits a literal append statement, honoring a pending
// truncate armed by a trim-close marker.
func (g *Generator) addOutput(content string) {
	if g.truncate {
		content = stripOneNewline(content)
		g.truncate = false
	}
	if content == "" {
		return
	}
	g.emitLiteral(content)
}

// emitLiteral emits an append statement for content, escaped to survive
// a quoted string literal round trip.
func (g *Generator) emitLiteral(content string) {
	fmt.Fprintf(&g.source, "%s(\"%s\")\n", AppendName, escapeLiteral(content))
}

var literalReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// escapeLiteral escapes backslashes, quotes, and line breaks so the
// content survives embedding in a double-quoted string literal.
func escapeLiteral(s string) string {
	return literalReplacer.Replace(s)
}

// stripOneNewline removes exactly one leading line break (CRLF, CR, or LF)
func stripOneNewline(s string) string {
	switch {
	case strings.HasPrefix(s, "\r\n"):
		return s[2:]
	case strings.HasPrefix(s, "\r"), strings.HasPrefix(s, "\n"):
		return s[1:]
	default:
		return s
	}
}

var reTrailingSemi = regexp.MustCompile(`;(\s*)$`)

// stripSemi drops a trailing statement semicolon from an inlined expression
func stripSemi(s string) string {
	return reTrailingSemi.ReplaceAllString(s, "$1")
}

// endsInsideLineComment reports whether the span's last line-comment
// marker sits after its last newline, i.e. the span ends inside an
// unterminated single-line comment. Both Risor comment forms count.
func endsInsideLineComment(s string) bool {
	lastNewline := strings.LastIndex(s, "\n")
	return strings.LastIndex(s, "//") > lastNewline || strings.LastIndex(s, "#") > lastNewline
}

// BuildProgram wraps the synthesized body with the prologue bindings.
// The output accumulator and the append helper itself are injected by
// the render layer; the only compile-time binding is the optional
// user-chosen alias for the append helper.
func BuildProgram(body, outputFunctionName string) string {
	if outputFunctionName == "" {
		return body
	}
	return outputFunctionName + " := " + AppendName + "\n" + body
}

var reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdentifier reports whether name is a valid identifier in the
// generated program's language.
func ValidIdentifier(name string) bool {
	return reIdentifier.MatchString(name)
}
