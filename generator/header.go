package generator

import (
	"strconv"
	"strings"

	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/codewriter"
)

func includeGuardMacro(base string) string {
	return base + "_protocol_h"
}

func emitHeader(w *codewriter.Writer, file *ast.ProtoFile, base string) {
	macro := includeGuardMacro(base)
	w.WriteLine("// Generated by proto2cpp. DO NOT EDIT.")
	w.OpenIncludeGuard(macro)
	w.WriteIncludeLibrary("cstdint")
	w.WriteIncludeLibrary("memory")
	w.WriteIncludeLibrary("string")
	w.WriteIncludeLibrary("vector")

	hasMessages := len(file.Messages) > 0
	if hasMessages {
		w.WriteIncludeProject(runtimeHeaderName)
	}
	for _, imp := range file.Imports {
		w.WriteIncludeProject(importedHeaderName(imp.Path))
	}
	w.WriteBlankLine()

	if file.Package != "" {
		w.OpenNamespace(file.Package)
		w.WriteBlankLine()
	}

	for _, e := range file.Enums {
		writeEnumDecl(w, e)
		w.WriteBlankLine()
	}

	for _, m := range file.Messages {
		emitMessageHeader(w, m)
		w.WriteBlankLine()
	}

	if file.Package != "" {
		w.CloseNamespace(file.Package)
	}
	w.CloseIncludeGuard(macro)
}

func importedHeaderName(path string) string {
	name := path
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".proto")
	return name + ".protocol.h"
}

func writeEnumDecl(w *codewriter.Writer, e *ast.Enum) {
	w.OpenEnum(e.QualifiedCppName())
	for i, v := range e.Values {
		if i == 0 {
			w.WriteEnumValueFirst(v.Name, v.Value)
		} else {
			w.WriteEnumValueSubsequent(v.Name, v.Value)
		}
	}
	w.CloseEnum()
}

// emitMessageHeader writes m's forward declarations, nested-enum
// block, nested message definitions (innermost first), then m's own
// class declaration — the ordering §4.E requires so later
// declarations may refer to earlier ones.
func emitMessageHeader(w *codewriter.Writer, m *ast.Message) {
	nested := m.NestedDepthFirst()
	for _, n := range nested {
		w.WriteClassForwardDeclaration(n.QualifiedCppName())
	}
	if len(nested) > 0 {
		w.WriteBlankLine()
	}

	for _, e := range m.AllNestedEnums() {
		writeEnumDecl(w, e)
		w.WriteBlankLine()
	}

	for _, n := range nested {
		emitMessageClass(w, n)
		w.WriteBlankLine()
	}

	emitMessageClass(w, m)
}

func emitMessageClass(w *codewriter.Writer, m *ast.Message) {
	className := m.QualifiedCppName()
	w.OpenClass(className, "ProtoMessage")
	w.WriteClassPublic()

	for _, n := range m.Messages {
		w.WriteTypedef(n.NamePascal(), n.QualifiedCppName())
	}
	for _, e := range m.Enums {
		w.WriteTypedef(e.NamePascal(), e.QualifiedCppName())
	}
	if len(m.Messages) > 0 || len(m.Enums) > 0 {
		w.WriteBlankLine()
	}

	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: className})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: className, Parameters: "const " + className + " & other"})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "~" + className, Virtual: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "operator=", ReturnType: className + " &", Parameters: "const " + className + " & other"})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "swap", ReturnType: "void", Parameters: className + " & other"})
	w.WriteBlankLine()

	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "clear", ReturnType: "void", Override: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "parse", ReturnType: "size_t", Parameters: "const uint8_t * data, size_t length", Override: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "serialize", ReturnType: "std::vector<uint8_t>", Const: true, Override: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "byte_size", ReturnType: "size_t", Const: true, Override: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "valid", ReturnType: "bool", Const: true, Override: true})
	w.WriteBlankLine()

	for _, f := range m.Fields {
		declareFieldAccessors(w, f)
		w.WriteBlankLine()
	}
	for _, o := range m.Oneofs {
		declareOneofAccessors(w, o)
		w.WriteBlankLine()
	}

	w.WriteClassPrivate()
	w.OpenStruct("Data")
	for _, f := range m.AllFields() {
		w.WriteClassFieldDeclaration("k"+f.NamePascal()+"FieldIndex", "uint32_t", true, true, strconv.FormatUint(uint64(f.Index), 10))
	}
	for _, f := range m.Fields {
		declareFieldBackingStorage(w, f)
	}
	for _, o := range m.Oneofs {
		declareOneofBackingStorage(w, o)
	}
	w.CloseStruct()
	w.WriteClassFieldDeclaration("mData", "std::shared_ptr<Data>", false, false, "")

	w.CloseClass()
}
