// Package parser turns a token.Stream into an ast.ProtoFile through a
// registry of sub-parsers keyed by grammatical context, mirroring the
// ParserManager/Parser split in the original implementation. Each
// sub-parser looks only at the current token to decide whether it
// applies; the first one in a context's registration order that
// accepts wins, and parsing never backtracks past an accepted
// sub-parser.
package parser

import (
	"sync"

	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// Context names the grammatical position a sub-parser is registered
// for. They match the contexts named in the grammar directly.
type Context string

const (
	ContextTop          Context = "top"
	ContextMessage      Context = "message"
	ContextOneof        Context = "oneof"
	ContextMessageField Context = "messageField"
	ContextOneofField   Context = "oneofField"
)

// SubParser attempts to consume one construct starting at s's current
// token. Parse returns (true, nil) having advanced s to the last
// token it consumed — the caller advances once more. It returns
// (false, nil) without moving s when the construct doesn't apply here
// at all. Any other outcome is a parse error: construct recognized,
// malformed.
type SubParser interface {
	Parse(s *token.Stream, model *ast.ProtoFile) (accepted bool, err error)
}

// Registry is a read-only-after-setup mapping from grammatical
// context to the ordered list of sub-parsers that may apply there.
type Registry struct {
	mu      sync.RWMutex
	parsers map[Context][]SubParser
}

// NewRegistry returns an empty registry; tests build their own so
// they can register a reduced or instrumented parser set.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[Context][]SubParser)}
}

// Register appends p to ctx's candidate list, in call order.
func (r *Registry) Register(ctx Context, p SubParser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[ctx] = append(r.parsers[ctx], p)
}

// Parsers returns ctx's candidate list in registration order.
func (r *Registry) Parsers(ctx Context) []SubParser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.parsers[ctx]
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, built lazily on first
// use with every built-in sub-parser registered, and never torn down.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

func registerBuiltins(r *Registry) {
	r.Register(ContextTop, newPackageParser())
	r.Register(ContextTop, newImportParser())
	r.Register(ContextTop, newMessageParser(r))
	r.Register(ContextTop, newEnumParser())

	r.Register(ContextMessage, newMessageParser(r))
	r.Register(ContextMessage, newEnumParser())
	r.Register(ContextMessage, newOneofParser(r))
	r.Register(ContextMessage, newMessageFieldParser(r))
	r.Register(ContextMessage, newOptionLineParser())

	r.Register(ContextOneof, newOneofFieldParser(r))

	r.Register(ContextMessageField, newFieldOptionsParser())
	r.Register(ContextOneofField, newFieldOptionsParser())
}

// tryParsers offers s to each candidate in order and returns the
// first one that accepts.
func tryParsers(candidates []SubParser, s *token.Stream, model *ast.ProtoFile) (bool, error) {
	for _, p := range candidates {
		accepted, err := p.Parse(s, model)
		if err != nil {
			return false, err
		}
		if accepted {
			return true, nil
		}
	}
	return false, nil
}

func posOf(s *token.Stream) xerrors.Pos {
	return xerrors.Pos{File: s.File(), Line: s.Cur().Line, Column: s.Cur().Column}
}
