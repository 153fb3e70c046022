// Package registry resolves a file extension to the Grammar that parses it
// (§2 "Language dispatch"), the language-agnostic dispatch layer the query
// database's AST queries sit on top of.
package registry

import (
	"fmt"
	"sync"

	"github.com/oxhq/webcst/internal/syntax"
)

// ParseFunc parses source text into a syntax tree. Every grammar package
// exposes one of these shapes (internal/grammar/js.Parse, .../ts.Parse,
// .../html.Parse, .../vue.Parse), parameterized however that grammar needs;
// Default wraps each to this common signature.
type ParseFunc func(text string) *syntax.Tree

// Registry maps file extensions (including the leading '.') to ParseFuncs.
// Modeled on the teacher's provider registry (internal/registry.Registry):
// a mutex-guarded map with conflict-checked registration, minus the
// alias/plugin machinery this spec has no use for.
type Registry struct {
	mu  sync.RWMutex
	byExt map[string]ParseFunc
}

// New builds an empty Registry.
func New() *Registry {
	return &Registry{byExt: make(map[string]ParseFunc)}
}

// Register adds the grammar for ext (e.g. ".ts"). Returns an error if ext is
// already registered — conflicting registrations are a configuration
// mistake, not something to silently overwrite.
func (r *Registry) Register(ext string, parse ParseFunc) error {
	if ext == "" {
		return fmt.Errorf("registry: extension must not be empty")
	}
	if parse == nil {
		return fmt.Errorf("registry: parse func for %q must not be nil", ext)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byExt[ext]; exists {
		return fmt.Errorf("registry: %q already registered", ext)
	}
	r.byExt[ext] = parse
	return nil
}

// Resolve looks up the ParseFunc registered for ext.
func (r *Registry) Resolve(ext string) (ParseFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byExt[ext]
	return p, ok
}

// Extensions returns every registered extension, unordered.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}
