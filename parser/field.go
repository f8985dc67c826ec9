package parser

import (
	"strconv"

	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// messageFieldParser handles `<requiredness> <type> <name> = <index>`
// followed by `;` or `[ <options> ] ;`, inside a message body.
type messageFieldParser struct {
	registry *Registry
}

func newMessageFieldParser(r *Registry) *messageFieldParser { return &messageFieldParser{registry: r} }

func (p *messageFieldParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	var requiredness ast.Requiredness
	switch s.Cur().Value {
	case "required":
		requiredness = ast.Required
	case "optional":
		requiredness = ast.Optional
	case "repeated":
		requiredness = ast.Repeated
	default:
		return false, nil
	}
	s.Next()

	if s.Cur().IsEnd() || s.Cur().Value == "" {
		return false, xerrors.Invalid(posOf(s), "expected field type")
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
		Requiredness: requiredness,
		FieldType:    fieldType,
		Name:         name,
		Index:        uint32(index),
	})

	s.Next()
	if s.Cur().IsEnd() {
		return false, xerrors.Invalid(posOf(s), "expected ; or [ character")
	}
	if s.Cur().Value != ";" {
		accepted, err := tryParsers(p.registry.Parsers(ContextMessageField), s, model)
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
