package parser

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// importParser handles `import [public|weak] "path";`.
type importParser struct{}

func newImportParser() *importParser { return &importParser{} }

func (p *importParser) Parse(s *token.Stream, model *ast.ProtoFile) (bool, error) {
	if s.Cur().Value != "import" {
		return false, nil
	}
	s.Next()

	vis := ast.VisibilityNormal
	switch s.Cur().Value {
	case "public":
		vis = ast.VisibilityPublic
		s.Next()
	case "weak":
		vis = ast.VisibilityWeak
		s.Next()
	}

	if s.Cur().Value != `"` {
		return false, xerrors.Invalid(posOf(s), "expected opening quote")
	}
	s.Next()
	if s.Cur().IsEnd() {
		return false, xerrors.Invalid(posOf(s), "expected import path")
	}
	path := s.Cur().Value
	s.Next()
	if s.Cur().Value != `"` {
		return false, xerrors.Invalid(posOf(s), "expected closing quote")
	}
	s.Next()
	if s.Cur().Value != ";" {
		return false, xerrors.Invalid(posOf(s), "expected ; character")
	}

	model.AddImport(path, vis)
	return true, nil
}
