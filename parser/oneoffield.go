package parser

import (
	"strconv"

	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// oneofFieldParser handles `<type> <name> = <index>` with implicit
// optional requiredness, inside a oneof body.
type oneofFieldParser struct {
	registry *Registry
}

func newOneofFieldParser(r *Registry) *oneofFieldParser { return &oneofFieldParser{registry: r} }

func (p *oneofFieldParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	if s.Cur().IsEnd() || s.Cur().Value == "" {
		return false, nil
	}
	fieldType := s.Cur().Value
	s.Next()

	if s.Cur().IsEnd() || s.Cur().Value == "" {
		return false, xerrors.Invalid(posOf(s), "expected field name")
	}
	name := s.Cur().Value
	s.Next()

	if s.Cur().Value != "=" {
		return false, xerrors.Invalid(posOf(s), "expected = character")
	}
	s.Next()

	if s.Cur().IsEnd() || s.Cur().Value == "" {
		return false, xerrors.Invalid(posOf(s), "expected field index")
	}
	index, err := strconv.ParseUint(s.Cur().Value, 10, 32)
	if err != nil {
		return false, xerrors.Invalid(posOf(s), "expected field index, got %q", s.Cur().Value)
	}

	model.AddField(&ast.Field{
		Requiredness: ast.Optional,
		FieldType:    fieldType,
		Name:         name,
		Index:        uint32(index),
	})

	s.Next()
	if s.Cur().IsEnd() {
		return false, xerrors.Invalid(posOf(s), "expected ; or [ character")
	}
	if s.Cur().Value != ";" {
		accepted, err := tryParsers(p.registry.Parsers(ContextOneofField), s, model)
		if err != nil {
			return false, err
		}
		if !accepted {
			return false, xerrors.Invalid(posOf(s), "unexpected option content found")
		}
		s.Next()
		if s.Cur().Value != ";" {
			return false, xerrors.Invalid(posOf(s), "expected ; character")
		}
	}
	model.CompleteField()
	return true, nil
}
