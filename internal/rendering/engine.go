package rendering

import (
	"context"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

// Renderer turns a document into a complete HTML string.
type Renderer func(doc *types.Document) (string, error)

// Engine is a registry of named renderers.
type Engine struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	order     []string
}

// NewEngine returns an engine with every built-in style registered.
func NewEngine() *Engine {
	e := &Engine{renderers: make(map[string]Renderer)}
	for _, style := range DefaultStyles() {
		e.RegisterStyle(style)
	}
	return e
}

// Register adds or replaces the renderer for name.
func (e *Engine) Register(name string, r Renderer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.renderers[name]; !exists {
		e.order = append(e.order, name)
	}
	e.renderers[name] = r
}

// RegisterStyle registers the shared layout parameterized by style's tokens.
func (e *Engine) RegisterStyle(style Style) {
	e.Register(style.Name, func(doc *types.Document) (string, error) {
		return RenderWithStyle(doc, style)
	})
}

// Styles returns registered style names in registration order.
func (e *Engine) Styles() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Has reports whether name is registered.
func (e *Engine) Has(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.renderers[name]
	return ok
}

// Render renders doc with the named style.
func (e *Engine) Render(doc *types.Document, style string) (string, error) {
	e.mu.RLock()
	r, ok := e.renderers[style]
	e.mu.RUnlock()

	if !ok {
		return "", &UnknownStyleError{Name: style, Available: e.Styles()}
	}
	return r(doc)
}

// RenderAll renders doc with every registered style. Styles are rendered
// concurrently; the first failure cancels the rest.
func (e *Engine) RenderAll(ctx context.Context, doc *types.Document) (map[string]string, error) {
	return e.RenderStyles(ctx, doc, e.Styles())
}

// RenderStyles renders doc with each of the named styles.
func (e *Engine) RenderStyles(ctx context.Context, doc *types.Document, styles []string) (map[string]string, error) {
	for _, name := range styles {
		if !e.Has(name) {
			return nil, &UnknownStyleError{Name: name, Available: e.Styles()}
		}
	}

	// Renderers read the document concurrently; give them a private copy.
	snapshot := doc.Clone()

	var mu sync.Mutex
	results := make(map[string]string, len(styles))

	g, gCtx := errgroup.WithContext(ctx)
	for _, name := range styles {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			html, err := e.Render(snapshot, name)
			if err != nil {
				return err
			}
			mu.Lock()
			results[name] = html
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
