package parser

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// packageParser handles `package <dotted>;`. A second occurrence
// before any message or enum is tolerated; the model simply overwrites
// the current package, so the last one wins.
type packageParser struct{}

func newPackageParser() *packageParser { return &packageParser{} }

func (p *packageParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	if s.Cur().Value != "package" {
		return false, nil
	}
	s.Next()
	if s.Cur().IsEnd() || s.Cur().Value == "" {
		return false, xerrors.Invalid(posOf(s), "expected package name")
	}
	name := s.Cur().Value
	s.Next()
	if s.Cur().Value != ";" {
		return false, xerrors.Invalid(posOf(s), "expected ; character")
	}
	model.SetCurrentPackage(name)
	return true, nil
}
