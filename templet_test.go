package templet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_PlainText(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	tests := []struct {
		name   string
		source string
	}{
		{name: "single line", source: "just plain text"},
		{name: "multi line", source: "line one\nline two\nline three"},
		{name: "empty", source: ""},
		{name: "quotes and backslashes", source: `a "quoted" \path\ here`},
		{name: "stray close chars", source: "a > b, a % b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.Render(ctx, tt.source, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.source, out)
		})
	}
}

func TestRender_TagModes(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	tests := []struct {
		name     string
		source   string
		data     map[string]any
		expected string
	}{
		{
			name:     "escaped output",
			source:   "<p><%= name %></p>",
			data:     map[string]any{"name": "geddy"},
			expected: "<p>geddy</p>",
		},
		{
			name:     "escaped output encodes entities",
			source:   "<%= v %>",
			data:     map[string]any{"v": `<a>&"'`},
			expected: "&lt;a&gt;&amp;&#34;&#39;",
		},
		{
			name:     "raw output is not encoded",
			source:   "<%- v %>",
			data:     map[string]any{"v": "<b>bold</b>"},
			expected: "<b>bold</b>",
		},
		{
			name:     "comment produces nothing",
			source:   "a<%# this never appears %>b",
			expected: "ab",
		},
		{
			name:     "scriptlet runs without output",
			source:   "<% x := 1 %>done",
			expected: "done",
		},
		{
			name:     "scriptlet with conditional",
			source:   `<% if loud { %>HELLO<% } else { %>hello<% } %>`,
			data:     map[string]any{"loud": true},
			expected: "HELLO",
		},
		{
			name:     "numeric value",
			source:   "<%= n %>",
			data:     map[string]any{"n": 42},
			expected: "42",
		},
		{
			name:     "nil value renders empty",
			source:   "[<%= missing %>]",
			data:     map[string]any{"missing": nil},
			expected: "[]",
		},
		{
			name:     "nil value through locals renders empty",
			source:   "[<%= locals.missing %>]",
			data:     map[string]any{"missing": nil},
			expected: "[]",
		},
		{
			name:     "nil value in raw output renders empty",
			source:   "[<%- missing %>]",
			data:     map[string]any{"missing": nil},
			expected: "[]",
		},
		{
			name:     "trailing semicolon stripped from expression",
			source:   "<%= name; %>",
			data:     map[string]any{"name": "alex"},
			expected: "alex",
		},
		{
			name:     "locals binding",
			source:   `<%= locals["first name"] %>`,
			data:     map[string]any{"first name": "Alex"},
			expected: "Alex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.Render(ctx, tt.source, tt.data, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRender_Loop(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	source := "<ul>\n<% for _, i := range items { -%>\n  <li><%= i %></li>\n<% } -%>\n</ul>"
	data := map[string]any{"items": []string{"a", "b", "c"}}

	out, err := engine.Render(ctx, source, data, nil)
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n  <li>a</li>\n  <li>b</li>\n  <li>c</li>\n</ul>", out)
}

func TestRender_WhitespaceControl(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	tests := []struct {
		name     string
		source   string
		opts     *Options
		expected string
	}{
		{
			name:     "trim close strips one newline",
			source:   "<% x := 1 -%>\nrest",
			expected: "rest",
		},
		{
			name:     "trim close strips crlf",
			source:   "<% x := 1 -%>\r\nrest",
			expected: "rest",
		},
		{
			name:     "trim close strips only one newline",
			source:   "<% x := 1 -%>\n\nrest",
			expected: "\nrest",
		},
		{
			name:     "plain close keeps the newline",
			source:   "<% x := 1 %>\nrest",
			expected: "\nrest",
		},
		{
			name:     "slurp markers eat surrounding spaces and tabs",
			source:   "   \t<%_ v := 2 _%>  \t\n<%= v %>",
			expected: "2",
		},
		{
			name:     "rmWhitespace collapses blank runs and trims lines",
			source:   "  hello  \n\n\n  world  ",
			opts:     &Options{RmWhitespace: true},
			expected: "hello\nworld",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.Render(ctx, tt.source, nil, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRender_LiteralEscape(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "doubled open renders a literal tag",
			source:   "<%%= name %>",
			expected: "<%= name %>",
		},
		{
			name:     "doubled close renders a literal close",
			source:   "%%>",
			expected: "%>",
		},
		{
			name:     "literal tag amid text",
			source:   "use <%%= x %> to print x",
			expected: "use <%= x %> to print x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.Render(ctx, tt.source, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRender_CustomDelimiters(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	opts := &Options{Delimiter: "#", OpenDelimiter: "[", CloseDelimiter: "]"}
	out, err := engine.Render(ctx, "[#= name #] plays <%= bass %>", map[string]any{"name": "geddy"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "geddy plays <%= bass %>", out)
}

func TestRender_OutputFunctionName(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	opts := &Options{OutputFunctionName: "echo"}
	out, err := engine.Render(ctx, `<% echo("hi ") %><%= name %>`, map[string]any{"name": "alex"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "hi alex", out)
}

func TestCompile_UnmatchedOpenTag(t *testing.T) {
	engine := MustNew()

	tests := []struct {
		name   string
		source string
		tag    string
	}{
		{name: "bare raw open at end", source: "hello <%-", tag: "<%-"},
		{name: "open without close", source: "<% x := 1", tag: "<%"},
		{name: "escaped open without close", source: "<%= name", tag: "<%="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Compile(tt.source, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.tag)
		})
	}
}

func TestCompile_EmbeddedSyntaxError(t *testing.T) {
	engine := MustNew()

	_, err := engine.Compile("<% if { %>", &Options{Filename: "broken.tpl"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgProgramParse)
	assert.Contains(t, err.Error(), "broken.tpl")
}

func TestCompile_LineCommentInScriptlet(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	out, err := engine.Render(ctx, "<% x := 1 // set x %><%= x %>", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

func TestRender_ErrorContext(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	source := "line one\nline two\n<%= 1 / 0 %>\nline four"
	_, err := engine.Render(ctx, source, nil, &Options{CompileDebug: true, Filename: "fail.tpl"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail.tpl:3")
	assert.Contains(t, err.Error(), " >> 3| <%= 1 / 0 %>")
	assert.Contains(t, err.Error(), "    2| line two")
	assert.Contains(t, err.Error(), "    4| line four")
}

func TestRender_ErrorContextFallbackName(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	_, err := engine.Render(ctx, "<%= 1 / 0 %>", nil, &Options{CompileDebug: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), FallbackTemplateName+":1")
}

func TestRender_NoContextWithoutCompileDebug(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	_, err := engine.Render(ctx, "<%= 1 / 0 %>", nil, &Options{})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), " >> ")
}

func TestTemplate_Reuse(t *testing.T) {
	engine := MustNew()
	ctx := context.Background()

	tmpl, err := engine.Compile("<p><%= name %></p>", nil)
	require.NoError(t, err)

	first, err := tmpl.Render(ctx, map[string]any{"name": "geddy"})
	require.NoError(t, err)
	second, err := tmpl.Render(ctx, map[string]any{"name": "alex"})
	require.NoError(t, err)

	assert.Equal(t, "<p>geddy</p>", first)
	assert.Equal(t, "<p>alex</p>", second)
}

func TestTemplate_Accessors(t *testing.T) {
	engine := MustNew()

	tmpl, err := engine.Compile("<%= name %>", nil)
	require.NoError(t, err)
	assert.Equal(t, "<%= name %>", tmpl.Text())
	assert.Contains(t, tmpl.Source(), "__append(__escape( name ))")
}
