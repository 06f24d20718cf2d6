// Package templet compiles mixed-content text templates into reusable
// render functions. Literal text passes through unchanged; embedded code
// fragments, written in Risor (a Go-like embeddable scripting language),
// are evaluated against a data context and substituted in place.
//
// # Tag Syntax
//
// Templates use EJS-style tags, built from three configurable delimiter
// characters (defaults "<", ">", "%"):
//
//	<% code %>    run code, output nothing
//	<%= expr %>   output expr, escaped
//	<%- expr %>   output expr, unescaped
//	<%# note %>   comment, discarded
//	<%% / %%>     literal "<%" / "%>" in the output
//	<%_ / _%>     like <% / %>, slurping adjacent whitespace
//	-%>           close tag dropping one following line break
//
// # Basic Usage
//
// Create an engine and render a template:
//
//	engine := templet.MustNew()
//	out, err := engine.Render(ctx, "<p><%= name %></p>",
//	    map[string]any{"name": "geddy"}, nil)
//	// out: "<p>geddy</p>"
//
// Compile once and render many times:
//
//	tmpl, err := engine.Compile("<ul><% for _, i := range items { -%>\n<li><%= i %></li><% } -%>\n</ul>", nil)
//	out, err := tmpl.Render(ctx, map[string]any{"items": []string{"a", "b"}})
//
// # Data Context
//
// Top-level data keys that are valid identifiers are available as bare
// names inside embedded code; the whole map is also bound under the
// locals name (default "locals"):
//
//	<%= name %>          same as
//	<%= locals.name %>
//
// # Includes
//
// Embedded code can splice in another template with include(path) or
// include(path, overrideData); paths resolve per the Options.Root and
// Options.Views configuration, relative to the including file.
//
// # Trust Boundary
//
// Embedded code executes with whatever the data context and include
// resolution expose. Compiling untrusted template sources is a
// deliberate non-goal: only compile templates you trust.
package templet
