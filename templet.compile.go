package templet

import (
	"context"
	"errors"

	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"
	"go.uber.org/zap"

	"github.com/itsatony/go-templet/internal"
)

// Compile turns template source into a reusable Template. The pipeline
// is: option validation, normalization and scanning of the template
// text, tag-pair validation plus source synthesis, prologue assembly,
// and a parse of the generated program to surface syntax errors in
// embedded code at compile time rather than on first render.
func (e *Engine) Compile(source string, opts *Options) (*Template, error) {
	o := opts.normalized()
	if err := o.validate(); err != nil {
		return nil, err
	}

	if o.Cache {
		if cached, ok := e.cache.Get(o.Filename); ok {
			e.logger.Debug(LogMsgCacheHit, zap.String(LogFieldFilename, o.Filename))
			return cached, nil
		}
	}

	e.logger.Debug(LogMsgCompileStart,
		zap.String(LogFieldFilename, o.Filename),
		zap.Int(LogFieldSourceLen, len(source)))

	scanner := internal.NewScanner(o.delims(), o.RmWhitespace, e.logger)
	text := scanner.Normalize(source)
	tokens := scanner.Scan(text)

	generator := internal.NewGenerator(internal.GeneratorConfig{
		Delims:       scanner.Delims(),
		CompileDebug: o.CompileDebug,
	}, e.logger)
	body, err := generator.Generate(tokens)
	if err != nil {
		return nil, err
	}
	program := internal.BuildProgram(body, o.OutputFunctionName)

	if o.Debug {
		e.logger.Info(LogMsgGeneratedSource,
			zap.String(LogFieldFilename, o.Filename),
			zap.String(LogFieldProgram, program))
	}

	if _, err := risorParser.Parse(context.Background(), program); err != nil {
		var friendly risorErrors.FriendlyError
		if errors.As(err, &friendly) {
			err = errors.New(friendly.FriendlyErrorMessage())
		}
		return nil, NewProgramParseError(err, o.Filename)
	}

	tmpl := &Template{
		engine:  e,
		opts:    o,
		text:    text,
		program: program,
	}

	if o.Cache {
		e.cache.Set(o.Filename, tmpl)
	}

	e.logger.Debug(LogMsgCompileEnd,
		zap.String(LogFieldFilename, o.Filename),
		zap.Int(LogFieldProgramLen, len(program)))
	return tmpl, nil
}
