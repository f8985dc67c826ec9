package parser

import (
	"io"

	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/token"
)

// ParseFile tokenizes src and drives r's "top" context parsers over
// it until EOF, then runs post-parse field-category enrichment. name
// is used in diagnostics and becomes the model's FileName, from which
// the generator derives its output file names.
func ParseFile(r *Registry, name string, src io.Reader) (*ast.ProtoFile, error) {
	s := token.New(name, src)
	model := ast.NewProtoFile(name)

	for !s.Cur().IsEnd() {
		accepted, err := tryParsers(r.Parsers(ContextTop), s, model)
		if err != nil {
			return nil, err
		}
		if !accepted {
			return nil, xerrors.Invalid(posOf(s), "unexpected token %q", s.Cur().Value)
		}
		s.Next()
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if !model.CursorsBalanced() {
		return nil, xerrors.Invalid(posOf(s), "unexpected end of file inside message body")
	}
	if err := model.EnrichFieldCategories(); err != nil {
		return nil, err
	}
	return model, nil
}
