package parser

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// optionLineParser accepts and discards an `option ...;` statement
// inside a message body. This core has no option registry of its own;
// it exists only so a .proto carrying message-level options still
// parses. It is registered only in the message context, so an option
// statement at file scope is not accepted.
type optionLineParser struct{}

func newOptionLineParser() *optionLineParser { return &optionLineParser{} }

func (p *optionLineParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	if s.Cur().Value != "option" {
		return false, nil
	}
	s.Next()
	for s.Cur().Value != ";" {
		if s.Cur().IsEnd() {
			return false, xerrors.Invalid(posOf(s), "expected ; character")
		}
		s.Next()
	}
	return true, nil
}
