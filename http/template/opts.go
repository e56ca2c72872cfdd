package template

import "io/fs"

// The EngineOptFn applies functional options to an *Engine when constructing it.
type EngineOptFn func(*Engine)

// WithFn encloses a named function so it can be added to an *Engine's function map.
func WithFn(name string, fn any) EngineOptFn {
	return func(e *Engine) {
		e.AddFn(name, fn)
	}
}

// WithFS sets the filesystem templates are read from,
// most usefully an embed.FS compiled into the binary.
func WithFS(filesys fs.FS) EngineOptFn {
	return func(e *Engine) {
		e.fs = filesys
	}
}

// WithRoot sets the directory templates live under, "tmpl" by default.
func WithRoot(dir string) EngineOptFn {
	return func(e *Engine) {
		e.root = dir
	}
}
