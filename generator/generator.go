// Package generator walks a parsed ast.ProtoFile and emits C++
// source, through a language-tag keyed registry the same shape as
// the sub-parser registry in package parser, mirroring the original
// ParserManager/GeneratorManager split.
package generator

import (
	"sync"

	"github.com/proto2cpp/proto2cpp/ast"
)

// OutputFile is one file the generator produced, named relative to
// the requested output directory.
type OutputFile struct {
	Name    string
	Content []byte
}

// Generator turns a parsed file into one or more output files.
type Generator interface {
	// Name identifies the generator in the registry, e.g. "CPlusPlus".
	Name() string
	// Generate is a pure function of file: same input, same output
	// files, byte for byte.
	Generate(file *ast.ProtoFile) ([]OutputFile, error)
}

// Registry is a read-only-after-setup mapping from language tag to
// the generator that handles it.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Register adds g under its own Name(), or the given tag if non-empty.
func (r *Registry) Register(languageTag string, g Generator) {
	if languageTag == "" {
		languageTag = g.Name()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[languageTag] = g
}

// Get returns the generator registered for languageTag, if any.
func (r *Registry) Get(languageTag string) (Generator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generators[languageTag]
	return g, ok
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide generator registry, built lazily
// with the C++ generator registered under "CPlusPlus".
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.Register("CPlusPlus", NewCPlusPlus())
	})
	return defaultRegistry
}
