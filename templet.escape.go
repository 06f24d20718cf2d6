package templet

import (
	"fmt"
	"strings"
)

// EscapeFunc converts a value to its output representation, escaping it
// for the target document format. It must return the empty string for a
// nil value.
type EscapeFunc func(v any) string

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// XMLEscape is the default escape function. The value is stringified
// (nil becomes the empty string, numeric zero becomes "0") and the XML
// significant characters are replaced with entities.
func XMLEscape(v any) string {
	if v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}
	return xmlReplacer.Replace(s)
}
