package generator

import (
	"path"
	"strings"

	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/codewriter"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
)

// CPlusPlus is the registered "CPlusPlus" Generator: it emits a
// header/implementation pair per input file plus, for a file that
// declares messages, the shared runtime support header, per §4.E of
// the schema-compiler design.
type CPlusPlus struct{}

// NewCPlusPlus returns the C++ generator.
func NewCPlusPlus() *CPlusPlus { return &CPlusPlus{} }

// Name identifies this generator in the registry.
func (g *CPlusPlus) Name() string { return "CPlusPlus" }

// Generate produces file's header and implementation, plus the
// runtime-support header when file declares at least one message (the
// only case in which the generated header includes it).
func (g *CPlusPlus) Generate(file *ast.ProtoFile) ([]OutputFile, error) {
	if file == nil {
		return nil, xerrors.Schema("generate: nil file")
	}
	if err := checkFieldCategories(file); err != nil {
		return nil, err
	}

	base := baseName(file.FileName)
	headerName := base + ".protocol.h"
	sourceName := base + ".protocol.cpp"

	h := codewriter.New()
	emitHeader(h, file, base)

	s := codewriter.New()
	emitSource(s, file, base, headerName)

	out := []OutputFile{
		{Name: headerName, Content: h.Bytes()},
		{Name: sourceName, Content: s.Bytes()},
	}
	if len(file.Messages) > 0 {
		out = append(out, OutputFile{Name: runtimeHeaderName, Content: RuntimeHeaderContent()})
	}
	return out, nil
}

// checkFieldCategories requires every field in file to have been
// classified by ast.ProtoFile.EnrichFieldCategories before generation
// — the generator has no fallback for an unresolved field type.
func checkFieldCategories(file *ast.ProtoFile) error {
	var walk func(m *ast.Message) error
	walk = func(m *ast.Message) error {
		for _, f := range m.AllFields() {
			if f.Category == ast.CategoryUnknown {
				return xerrors.Schema("message %q field %q: category not resolved", m.Name, f.Name)
			}
		}
		for _, n := range m.Messages {
			if err := walk(n); err != nil {
				return err
			}
		}
		return nil
	}
	for _, m := range file.Messages {
		if err := walk(m); err != nil {
			return err
		}
	}
	return nil
}

// baseName strips the directory and ".proto" suffix from fileName,
// e.g. "schemas/person.proto" -> "person".
func baseName(fileName string) string {
	b := path.Base(fileName)
	return strings.TrimSuffix(b, ".proto")
}
