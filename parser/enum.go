package parser

import (
	"strconv"

	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// enumParser handles `enum <Name> { <name> = <signedInt>; ... }`,
// usable both at file scope and inside a message body.
type enumParser struct{}

func newEnumParser() *enumParser { return &enumParser{} }

func (p *enumParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	if s.Cur().Value != "enum" {
		return false, nil
	}
	s.Next()
	if s.Cur().IsEnd() || s.Cur().Value == "" {
		return false, xerrors.Invalid(posOf(s), "expected enum name")
	}
	name := s.Cur().Value
	s.Next()
	if s.Cur().Value != "{" {
		return false, xerrors.Invalid(posOf(s), "expected { character")
	}
	s.Next()

	e := model.AddEnum(name)
	for s.Cur().Value != "}" {
		if s.Cur().IsEnd() {
			return false, xerrors.Invalid(posOf(s), "unexpected end of file in enum body")
		}
		valueName := s.Cur().Value
		s.Next()
		if s.Cur().Value != "=" {
			return false, xerrors.Invalid(posOf(s), "expected = character")
		}
		s.Next()
		value, err := strconv.ParseInt(s.Cur().Value, 10, 64)
		if err != nil {
			return false, xerrors.Invalid(posOf(s), "expected enum value, got %q", s.Cur().Value)
		}
		s.Next()
		if s.Cur().Value != ";" {
			return false, xerrors.Invalid(posOf(s), "expected ; character")
		}
		model.AddEnumValue(e, valueName, value)
		s.Next()
	}
	if len(e.Values) == 0 {
		return false, xerrors.Invalid(posOf(s), "enum %q must declare at least one value", name)
	}
	return true, nil
}
