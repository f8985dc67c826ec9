package parser

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// messageParser handles `message <Name> { <body> }`, where body is
// whatever the "message" context's sub-parsers accept: nested
// messages and enums, oneofs, fields, and ignored option lines. It is
// registered both in the top-level context and in its own context,
// so messages nest to any depth.
type messageParser struct {
	registry *Registry
}

func newMessageParser(r *Registry) *messageParser { return &messageParser{registry: r} }

func (p *messageParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	if s.Cur().Value != "message" {
		return false, nil
	}
	s.Next()
	if s.Cur().IsEnd() || s.Cur().Value == "" {
		return false, xerrors.Invalid(posOf(s), "expected message name")
	}
	name := s.Cur().Value
	s.Next()
	if s.Cur().Value != "{" {
		return false, xerrors.Invalid(posOf(s), "expected { character")
	}
	s.Next()

	model.AddMessage(name)
	for s.Cur().Value != "}" {
		if s.Cur().IsEnd() {
			return false, xerrors.Invalid(posOf(s), "unexpected end of file in message body")
		}
		accepted, err := tryParsers(p.registry.Parsers(ContextMessage), s, model)
		if err != nil {
			return false, err
		}
		if !accepted {
			return false, xerrors.Invalid(posOf(s), "unexpected token %q in message body", s.Cur().Value)
		}
		s.Next()
	}
	model.CompleteMessage()
	return true, nil
}
