package templet

import (
	"context"
	"fmt"
	"strings"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
	"go.uber.org/zap"

	"github.com/itsatony/go-templet/internal"
)

// Template is a compiled template. It is immutable after construction
// and safe to render repeatedly and concurrently: every render owns a
// fresh output accumulator and a fresh include closure, so invocations
// never share state.
type Template struct {
	engine  *Engine
	opts    *Options
	text    string // normalized template text, used for error excerpts
	program string // synthesized program source
}

// Text returns the normalized template text
func (t *Template) Text() string {
	return t.text
}

// Source returns the synthesized program source
func (t *Template) Source() string {
	return t.program
}

// renderState is the per-invocation mutable state shared with the
// injected collaborators: the output accumulator and the current
// template line, updated by the generated line-tracking statements.
type renderState struct {
	out  strings.Builder
	line int
}

// Render executes the template against a data context. Data values are
// bound under the configured locals name and, for identifier-valid keys,
// as bare names. Blocking work inside embedded code (includes resolving
// nested templates) runs under ctx.
func (t *Template) Render(ctx context.Context, data map[string]any) (string, error) {
	if data == nil {
		data = map[string]any{}
	}
	t.engine.logger.Debug(LogMsgRenderStart, zap.String(LogFieldFilename, t.opts.Filename))

	state := &renderState{line: 1}
	globals := t.buildGlobals(data, state)

	_, err := risor.Eval(ctx, t.program, risor.WithGlobals(globals))
	if err != nil {
		if t.opts.CompileDebug {
			return "", rethrow(err, t.text, t.opts.Filename, state.line, t.opts.Escape)
		}
		return "", err
	}

	out := state.out.String()
	t.engine.logger.Debug(LogMsgRenderEnd,
		zap.String(LogFieldFilename, t.opts.Filename),
		zap.Int(LogFieldOutputLen, len(out)))
	return out, nil
}

// buildGlobals assembles the injected collaborators and the data
// bindings for one invocation. Collaborators always win over data keys
// of the same name.
func (t *Template) buildGlobals(data map[string]any, state *renderState) map[string]any {
	escape := t.opts.Escape

	appendFn := object.NewBuiltin(internal.AppendName, func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.Errorf("type error: %s() takes exactly one argument (%d given)", internal.AppendName, len(args))
		}
		writeValue(&state.out, args[0])
		return object.Nil
	})

	escapeFn := object.NewBuiltin(internal.EscapeName, func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.Errorf("type error: %s() takes exactly one argument (%d given)", internal.EscapeName, len(args))
		}
		if args[0] == object.Nil {
			return object.NewString("")
		}
		return object.NewString(escape(args[0].Interface()))
	})

	lineFn := object.NewBuiltin(internal.LineName, func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) == 1 {
			if n, ok := args[0].Interface().(int64); ok {
				state.line = int(n)
			}
		}
		return object.Nil
	})

	// The include closure is built fresh for every invocation so that it
	// captures this invocation's data context.
	includeFn := object.NewBuiltin(internal.IncludeName, func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) < 1 || len(args) > 2 {
			return object.Errorf("type error: %s() takes one or two arguments (%d given)", internal.IncludeName, len(args))
		}
		path, ok := args[0].Interface().(string)
		if !ok {
			return object.Errorf("type error: %s() expected a string path (%s given)", internal.IncludeName, args[0].Type())
		}
		merged := make(map[string]any, len(data))
		for k, v := range data {
			merged[k] = v
		}
		if len(args) == 2 && args[1] != object.Nil {
			override, ok := args[1].Interface().(map[string]any)
			if !ok {
				return object.Errorf("type error: %s() expected a map of override data (%s given)", internal.IncludeName, args[1].Type())
			}
			for k, v := range override {
				merged[k] = v
			}
		}
		out, err := t.engine.renderInclude(ctx, path, merged, t.opts)
		if err != nil {
			return object.NewError(err)
		}
		return object.NewString(out)
	})

	// Risor's type converter dereferences the dynamic type of every bound
	// value, so an untyped Go nil must be replaced with object.Nil before
	// it crosses into the evaluator.
	locals := make(map[string]any, len(data))
	for k, v := range data {
		if v == nil {
			locals[k] = object.Nil
			continue
		}
		locals[k] = v
	}

	globals := map[string]any{
		internal.AppendName:  appendFn,
		internal.EscapeName:  escapeFn,
		internal.LineName:    lineFn,
		internal.IncludeName: includeFn,
		t.opts.LocalsName:    locals,
	}
	for k, v := range locals {
		if !internal.ValidIdentifier(k) {
			continue
		}
		if _, taken := globals[k]; taken {
			continue
		}
		globals[k] = v
	}
	return globals
}

// writeValue appends a value to the accumulator, ignoring nil so that
// optional values render as nothing rather than "nil".
func writeValue(b *strings.Builder, obj object.Object) {
	if obj == object.Nil {
		return
	}
	v := obj.Interface()
	if v == nil {
		return
	}
	if s, ok := v.(string); ok {
		b.WriteString(s)
		return
	}
	fmt.Fprintf(b, "%v", v)
}
