package parser

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// oneofParser handles `oneof <Name> { <oneofField>+ }`.
type oneofParser struct {
	registry *Registry
}

func newOneofParser(r *Registry) *oneofParser { return &oneofParser{registry: r} }

func (p *oneofParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	if s.Cur().Value != "oneof" {
		return false, nil
	}
	s.Next()
	if s.Cur().IsEnd() || s.Cur().Value == "" {
		return false, xerrors.Invalid(posOf(s), "expected oneof name")
	}
	name := s.Cur().Value
	s.Next()
	if s.Cur().Value != "{" {
		return false, xerrors.Invalid(posOf(s), "expected { character")
	}
	s.Next()

	model.AddOneof(name)
	for s.Cur().Value != "}" {
		if s.Cur().IsEnd() {
			return false, xerrors.Invalid(posOf(s), "unexpected end of file in oneof body")
		}
		accepted, err := tryParsers(p.registry.Parsers(ContextOneof), s, model)
		if err != nil {
			return false, err
		}
		if !accepted {
			return false, xerrors.Invalid(posOf(s), "unexpected token %q in oneof body", s.Cur().Value)
		}
		s.Next()
	}
	model.CompleteOneof()
	return true, nil
}
