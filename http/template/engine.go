package template

import (
	"bytes"
	"fmt"
	html "html/template"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/switchyard-web/switchyard"
)

const defaultRoot = "tmpl"

// An Engine locates and renders the HTML templates routes point at.
//
// An Engine is safe for concurrent use once constructed;
// AddFn must not be called after the first Render.
type Engine struct {
	fs   fs.FS
	fns  html.FuncMap
	root string

	// Parsed templates keyed by file path. Never invalidated:
	// template files do not change during a run.
	mu    sync.Mutex
	cache map[string]*html.Template
}

// NewEngine constructs an *Engine with the provided functional options.
//
// By default templates are read from the "tmpl" directory
// of the current working directory.
func NewEngine(opts ...EngineOptFn) *Engine {
	e := &Engine{
		fns:   make(html.FuncMap),
		root:  defaultRoot,
		cache: make(map[string]*html.Template),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.fs == nil {
		e.fs = os.DirFS(".")
	}

	return e
}

// AddFn includes the named function in the Engine function map.
func (e *Engine) AddFn(name string, fn any) {
	if e.fns == nil {
		e.fns = make(html.FuncMap)
	}
	e.fns[name] = fn
}

// Render executes the template at <root>/<resourceName>/<kind>.tmpl
// with presenter as its data, returning the rendered bytes.
//
// A template file that cannot be found surfaces as ErrNotExist.
func (e *Engine) Render(resourceName, kind string, presenter any) ([]byte, error) {
	fp := path.Join(e.root, resourceName, kind+".tmpl")
	t, err := e.parse(fp)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, presenter); err != nil {
		return nil, fmt.Errorf("could not render %s: %w", fp, err)
	}

	return buf.Bytes(), nil
}

// parse retrieves the parsed template for fp, parsing and caching it on first use.
func (e *Engine) parse(fp string) (*html.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if t, ok := e.cache[fp]; ok {
		return t, nil
	}

	// NOTE: ParseFS reports a missing file as a pattern matching nothing,
	// losing fs.ErrNotExist; stat first to keep the sentinel.
	if _, err := fs.Stat(e.fs, fp); err != nil {
		return nil, fmt.Errorf("%w: no template at %s: %s", switchyard.ErrNotExist, fp, err)
	}

	t, err := html.New(path.Base(fp)).Funcs(e.fns).ParseFS(e.fs, fp)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", fp, err)
	}

	e.cache[fp] = t
	return t, nil
}
