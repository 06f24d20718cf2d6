package templet

import (
	"fmt"
	"strings"
)

// Excerpt window size in lines on each side of the failing line
const excerptRadius = 3

// rethrow decorates an execution failure with a windowed excerpt of the
// template around the failing line. The window spans three lines before
// to three lines after, clamped to the document; the failing line is
// marked with " >> ", others are plainly indented, and every line is
// prefixed with its 1-based number. The decorated error is always
// returned to the caller, never swallowed.
func rethrow(err error, text, filename string, lineno int, escape EscapeFunc) error {
	lines := strings.Split(text, "\n")
	start := lineno - excerptRadius
	if start < 0 {
		start = 0
	}
	end := lineno + excerptRadius
	if end > len(lines) {
		end = len(lines)
	}

	escaped := ""
	if filename != "" {
		escaped = escape(filename)
	}

	excerpt := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		curr := i + 1
		prefix := "    "
		if curr == lineno {
			prefix = " >> "
		}
		excerpt = append(excerpt, fmt.Sprintf("%s%d| %s", prefix, curr, lines[i]))
	}

	name := escaped
	if name == "" {
		name = FallbackTemplateName
	}
	message := fmt.Sprintf(FmtRenderContext, name, lineno, strings.Join(excerpt, "\n"), err.Error())
	return newRenderContextError(err, message, escaped, lineno)
}
