package templet

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// renderInclude resolves, compiles, and renders an include target for
// one include() call. The data passed in is already the including
// invocation's context merged with any override data. Compilation goes
// through Compile so the engine cache is honored for file-backed
// includes.
func (e *Engine) renderInclude(ctx context.Context, path string, data map[string]any, parent *Options) (string, error) {
	opts := parent.forInclude()
	resolved, err := e.resolveInclude(ctx, path, parent)
	if err != nil {
		return "", err
	}

	var tmpl *Template
	if resolved.Template != "" {
		opts.Filename = resolved.Filename
		opts.Cache = false // inline text has no cache key
		tmpl, err = e.Compile(resolved.Template, opts)
	} else {
		opts.Filename = resolved.Filename
		if opts.Cache {
			if cached, ok := e.cache.Get(resolved.Filename); ok {
				e.logger.Debug(LogMsgCacheHit, zap.String(LogFieldFilename, resolved.Filename))
				return cached.Render(ctx, data)
			}
		}
		var source []byte
		source, err = os.ReadFile(resolved.Filename)
		if err != nil {
			return "", NewReadFileError(err, resolved.Filename)
		}
		tmpl, err = e.Compile(string(source), opts)
	}
	if err != nil {
		return "", err
	}
	return tmpl.Render(ctx, data)
}

// resolveInclude implements the include resolution protocol: absolute
// paths resolve against the root directory (or the first existing match
// when several roots are configured); relative paths resolve against the
// including file's directory, then each views directory in order. A path
// without an extension gets the default template extension. When nothing
// resolves, the engine storage backend is consulted by name, then the
// custom includer; otherwise resolution fails naming the original path.
func (e *Engine) resolveInclude(ctx context.Context, path string, opts *Options) (IncludeResult, error) {
	name := path
	if filepath.Ext(name) == "" {
		name += DefaultTemplateExt
	}

	var resolved string
	if strings.HasPrefix(name, "/") {
		trimmed := strings.TrimLeft(name, "/")
		roots := opts.Root
		switch {
		case len(roots) == 0:
			resolved = filepath.Join(DefaultRootDir, trimmed)
		case len(roots) == 1:
			resolved = filepath.Join(roots[0], trimmed)
		default:
			resolved = firstExisting(roots, trimmed)
		}
	} else {
		if opts.Filename != "" {
			candidate := filepath.Join(filepath.Dir(opts.Filename), name)
			if fileExists(candidate) {
				resolved = candidate
			}
		}
		if resolved == "" && len(opts.Views) > 0 {
			resolved = firstExisting(opts.Views, name)
		}
		if resolved == "" && opts.Filename == "" && len(opts.Views) == 0 &&
			e.storage == nil && opts.Includer == nil {
			return IncludeResult{}, NewMissingFilenameError(path)
		}
	}

	if resolved == "" && e.storage != nil {
		if stored, err := e.storage.Get(ctx, path); err == nil {
			return IncludeResult{Template: stored.Source}, nil
		}
	}

	if opts.Includer != nil {
		result, err := opts.Includer(path, resolved)
		if err != nil {
			return IncludeResult{}, err
		}
		if result.Template != "" || result.Filename != "" {
			return result, nil
		}
	}

	if resolved == "" {
		return IncludeResult{}, NewIncludeNotFoundError(path, opts.Escape)
	}

	e.logger.Debug(LogMsgIncludeResolved,
		zap.String(LogFieldPath, path),
		zap.String(LogFieldResolvedPath, resolved))
	return IncludeResult{Filename: resolved}, nil
}

// firstExisting joins name onto each dir in order and returns the first
// path that exists, or empty.
func firstExisting(dirs []string, name string) string {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// fileExists reports whether path exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
