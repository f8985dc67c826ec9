package parser

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// fieldOptionsParser handles `[ key = value, ... ]` trailing a field
// declaration. "default" is the only recognized key; anything else is
// a parse error, matching the original core's contract.
type fieldOptionsParser struct{}

func newFieldOptionsParser() *fieldOptionsParser { return &fieldOptionsParser{} }

func (p *fieldOptionsParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	if s.Cur().Value != "[" {
		return false, nil
	}
	s.Next()

	for {
		if s.Cur().IsEnd() || s.Cur().Value == "" {
			return false, xerrors.Invalid(posOf(s), "expected option key")
		}
		key := s.Cur().Value
		s.Next()
		if s.Cur().Value != "=" {
			return false, xerrors.Invalid(posOf(s), "expected = character")
		}
		s.Next()
		if s.Cur().IsEnd() || s.Cur().Value == "" {
			return false, xerrors.Invalid(posOf(s), "expected option value")
		}
		value := s.Cur().Value
		if value == `"` {
			s.Next()
			if s.Cur().IsEnd() {
				return false, xerrors.Invalid(posOf(s), "expected option value")
			}
			quoted := s.Cur().Value
			s.Next()
			if s.Cur().Value != `"` {
				return false, xerrors.Invalid(posOf(s), "expected closing quote")
			}
			value = `"` + quoted + `"`
		}

		switch key {
		case "default":
			model.SetDefaultValue(value)
		default:
			return false, xerrors.Invalid(posOf(s), "unrecognized field option %q", key)
		}

		s.Next()
		switch s.Cur().Value {
		case ",":
			s.Next()
			continue
		case "]":
			return true, nil
		default:
			return false, xerrors.Invalid(posOf(s), "expected , or ] character")
		}
	}
}
