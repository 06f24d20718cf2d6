package templet

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// Engine is the main entry point for the templet template compiler. It
// owns the compiled-template cache, the optional storage backend, and
// the logger shared by every compile pass.
type Engine struct {
	cache   TemplateCache
	storage TemplateStorage
	logger  *zap.Logger
}

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	logger  *zap.Logger
	cache   TemplateCache
	storage TemplateStorage
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithCache sets the compiled-template cache implementation.
// Default: an unbounded in-memory cache.
func WithCache(cache TemplateCache) Option {
	return func(c *engineConfig) {
		c.cache = cache
	}
}

// WithStorage sets a template storage backend. When configured, it is
// consulted by RenderStored and as a fallback source for includes that
// resolve to no file.
func WithStorage(storage TemplateStorage) Option {
	return func(c *engineConfig) {
		c.storage = storage
	}
}

// New creates a new templet Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := &engineConfig{}
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cache := config.cache
	if cache == nil {
		cache = NewMemoryTemplateCache()
	}

	logger.Debug(LogMsgEngineCreated)
	return &Engine{
		cache:   cache,
		storage: config.storage,
		logger:  logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Render compiles and renders a template source in one step. For
// templates rendered repeatedly, use Compile and reuse the Template.
func (e *Engine) Render(ctx context.Context, source string, data map[string]any, opts *Options) (string, error) {
	tmpl, err := e.Compile(source, opts)
	if err != nil {
		return "", err
	}
	return tmpl.Render(ctx, data)
}

// RenderFile reads a template file and renders it. The file path becomes
// the Filename option, so relative includes resolve against its
// directory and the compiled template is cacheable.
func (e *Engine) RenderFile(ctx context.Context, path string, data map[string]any, opts *Options) (string, error) {
	o := opts.normalized()
	o.Filename = path

	if o.Cache {
		if cached, ok := e.cache.Get(path); ok {
			e.logger.Debug(LogMsgCacheHit, zap.String(LogFieldFilename, path))
			return cached.Render(ctx, data)
		}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", NewReadFileError(err, path)
	}
	tmpl, err := e.Compile(string(source), o)
	if err != nil {
		return "", err
	}
	return tmpl.Render(ctx, data)
}

// RenderStored fetches a template from the configured storage backend by
// name and renders it.
func (e *Engine) RenderStored(ctx context.Context, name string, data map[string]any, opts *Options) (string, error) {
	if e.storage == nil {
		return "", NewNoStorageError()
	}
	stored, err := e.storage.Get(ctx, name)
	if err != nil {
		return "", err
	}
	o := opts.normalized()
	o.Cache = false // storage templates are keyed by name, not filename
	tmpl, err := e.Compile(stored.Source, o)
	if err != nil {
		return "", err
	}
	return tmpl.Render(ctx, data)
}

// ClearCache drops every cached compiled template.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}
