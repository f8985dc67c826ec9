// Package codewriter is the line-oriented C++ output sink the
// generator writes through: an indenting bytes.Buffer with one method
// per construct (include guards, namespaces, classes, control flow,
// method bodies) rather than a generic template. It is the Go analogue
// of protogen.GeneratedFile's buf-plus-P() idiom, extended with
// indent tracking since nothing downstream reformats the output the
// way gofmt does for generated Go.
package codewriter

import (
	"bytes"
	"fmt"
	"strings"
)

const indentUnit = "    "

// Writer accumulates one C++ source file. The zero value is ready to use.
type Writer struct {
	buf    bytes.Buffer
	indent int
}

// New returns an empty Writer.
func New() *Writer { return &Writer{} }

// Bytes returns the accumulated file content.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// String returns the accumulated file content.
func (w *Writer) String() string { return w.buf.String() }

func (w *Writer) line(v ...interface{}) {
	w.buf.WriteString(strings.Repeat(indentUnit, w.indent))
	for _, x := range v {
		fmt.Fprint(&w.buf, x)
	}
	w.buf.WriteByte('\n')
}

// WriteLine writes one indented line, concatenating its arguments
// with no separator, the same convention as protogen's P.
func (w *Writer) WriteLine(v ...interface{}) { w.line(v...) }

// WriteLineIndented writes one line indented one level deeper than
// the writer's current level, without changing that level.
func (w *Writer) WriteLineIndented(v ...interface{}) {
	w.indent++
	w.line(v...)
	w.indent--
}

// WriteBlankLine writes an empty line.
func (w *Writer) WriteBlankLine() { w.buf.WriteByte('\n') }

// OpenIncludeGuard writes `#ifndef MACRO` / `#define MACRO`.
func (w *Writer) OpenIncludeGuard(macro string) {
	w.line("#ifndef ", macro)
	w.line("#define ", macro)
}

// CloseIncludeGuard writes `#endif  // MACRO`.
func (w *Writer) CloseIncludeGuard(macro string) {
	w.line("#endif  // ", macro)
}

// WriteIncludeLibrary writes `#include <name>`.
func (w *Writer) WriteIncludeLibrary(name string) { w.line("#include <", name, ">") }

// WriteIncludeProject writes `#include "name"`.
func (w *Writer) WriteIncludeProject(name string) { w.line(`#include "`, name, `"`) }

// WriteUsingNamespace writes `using namespace name;`.
func (w *Writer) WriteUsingNamespace(name string) { w.line("using namespace ", name, ";") }

// OpenNamespace opens `namespace name {` and indents.
func (w *Writer) OpenNamespace(name string) {
	w.line("namespace ", name)
	w.line("{")
	w.indent++
}

// CloseNamespace un-indents and closes the namespace with a
// name-bearing trailing comment, matching the original generator.
func (w *Writer) CloseNamespace(name string) {
	w.indent--
	w.line("} // namespace ", name)
}

// OpenEnum opens `enum class name {` and indents.
func (w *Writer) OpenEnum(name string) {
	w.line("enum class ", name)
	w.line("{")
	w.indent++
}

// WriteEnumValueFirst writes the first value of an enum body, with no
// leading comma.
func (w *Writer) WriteEnumValueFirst(name string, value int64) {
	w.line(name, " = ", value)
}

// WriteEnumValueSubsequent writes a later value, comma-led.
func (w *Writer) WriteEnumValueSubsequent(name string, value int64) {
	w.line(", ", name, " = ", value)
}

// CloseEnum un-indents and closes the enum.
func (w *Writer) CloseEnum() {
	w.indent--
	w.line("};")
}

// OpenClass opens a class declaration, with an optional base class.
func (w *Writer) OpenClass(name, baseClass string) {
	if baseClass != "" {
		w.line("class ", name, " : public ", baseClass)
	} else {
		w.line("class ", name)
	}
	w.line("{")
	w.indent++
}

// CloseClass un-indents and closes the class.
func (w *Writer) CloseClass() {
	w.indent--
	w.line("};")
}

// WriteClassPublic writes a `public:` access-specifier line.
func (w *Writer) WriteClassPublic() { w.line("public:") }

// WriteClassPrivate writes a `private:` access-specifier line.
func (w *Writer) WriteClassPrivate() { w.line("private:") }

// WriteClassForwardDeclaration writes `class name;`.
func (w *Writer) WriteClassForwardDeclaration(name string) { w.line("class ", name, ";") }

// WriteTypedef writes `typedef target alias;`.
func (w *Writer) WriteTypedef(alias, target string) {
	w.line("typedef ", target, " ", alias, ";")
}

// MethodDecl is a class method's declaration, with the modifier set
// the generator needs: const accessors, virtual/override lifecycle
// hooks, inline one-liners, and deleted copy operations.
type MethodDecl struct {
	Name       string
	ReturnType string
	Parameters string
	Const      bool
	Static     bool
	Virtual    bool
	Override   bool
	Inline     bool
	Deleted    bool
}

// WriteClassMethodDeclaration writes one method declaration line
// inside a class body, applying d's modifiers in standard C++ order.
func (w *Writer) WriteClassMethodDeclaration(d MethodDecl) {
	var b strings.Builder
	if d.Static {
		b.WriteString("static ")
	}
	if d.Virtual {
		b.WriteString("virtual ")
	}
	if d.Inline {
		b.WriteString("inline ")
	}
	if d.ReturnType != "" {
		b.WriteString(d.ReturnType)
		b.WriteString(" ")
	}
	b.WriteString(d.Name)
	b.WriteString("(")
	b.WriteString(d.Parameters)
	b.WriteString(")")
	if d.Const {
		b.WriteString(" const")
	}
	if d.Override {
		b.WriteString(" override")
	}
	if d.Deleted {
		b.WriteString(" = delete;")
	} else {
		b.WriteString(";")
	}
	w.line(b.String())
}

// WriteClassFieldDeclaration writes one field declaration line,
// with optional static/const modifiers and an initial value.
func (w *Writer) WriteClassFieldDeclaration(name, fieldType string, static, constField bool, initialValue string) {
	var b strings.Builder
	if static {
		b.WriteString("static ")
	}
	if constField {
		b.WriteString("const ")
	}
	b.WriteString(fieldType)
	b.WriteString(" ")
	b.WriteString(name)
	if initialValue != "" {
		b.WriteString(" = ")
		b.WriteString(initialValue)
	}
	b.WriteString(";")
	w.line(b.String())
}

// OpenStruct opens a struct declaration and indents.
func (w *Writer) OpenStruct(name string) {
	w.line("struct ", name)
	w.line("{")
	w.indent++
}

// CloseStruct un-indents and closes the struct.
func (w *Writer) CloseStruct() {
	w.indent--
	w.line("};")
}

// OpenMethodImplementation opens a free-standing `ReturnType
// Class::Method(params) [const] {` body.
func (w *Writer) OpenMethodImplementation(className, methodName, returnType, parameters string, constMethod bool) {
	var b strings.Builder
	if returnType != "" {
		b.WriteString(returnType)
		b.WriteString(" ")
	}
	b.WriteString(className)
	b.WriteString("::")
	b.WriteString(methodName)
	b.WriteString("(")
	b.WriteString(parameters)
	b.WriteString(")")
	if constMethod {
		b.WriteString(" const")
	}
	w.line(b.String())
	w.line("{")
	w.indent++
}

// CloseMethodImplementation un-indents and closes the method body.
func (w *Writer) CloseMethodImplementation() {
	w.indent--
	w.line("}")
}

// OpenConstructorImplementation opens `Class::Class(params)` with a
// member-initializer list, one entry per line, `:`-led then `,`-led.
func (w *Writer) OpenConstructorImplementation(className, parameters string, memberInitializers []string) {
	w.line(className, "::", className, "(", parameters, ")")
	w.indent++
	for i, m := range memberInitializers {
		if i == 0 {
			w.line(": ", m)
		} else {
			w.line(", ", m)
		}
	}
	w.indent--
	w.line("{")
	w.indent++
}

// CloseConstructorImplementation un-indents and closes the constructor body.
func (w *Writer) CloseConstructorImplementation() {
	w.indent--
	w.line("}")
}

// OpenIf opens `if (condition) {` and indents.
func (w *Writer) OpenIf(condition string) {
	w.line("if (", condition, ")")
	w.line("{")
	w.indent++
}

// OpenElseIf closes the previous branch and opens `else if (condition) {`.
func (w *Writer) OpenElseIf(condition string) {
	w.indent--
	w.line("}")
	w.line("else if (", condition, ")")
	w.line("{")
	w.indent++
}

// OpenElse closes the previous branch and opens `else {`.
func (w *Writer) OpenElse() {
	w.indent--
	w.line("}")
	w.line("else")
	w.line("{")
	w.indent++
}

// CloseIf un-indents and closes the final branch.
func (w *Writer) CloseIf() {
	w.indent--
	w.line("}")
}

// OpenWhile opens `while (condition) {` and indents.
func (w *Writer) OpenWhile(condition string) {
	w.line("while (", condition, ")")
	w.line("{")
	w.indent++
}

// CloseWhile un-indents and closes the loop.
func (w *Writer) CloseWhile() {
	w.indent--
	w.line("}")
}

// OpenSwitch opens `switch (expr) {` without indenting — cases carry
// their own indent so `case`/`default` lines sit flush with the brace.
func (w *Writer) OpenSwitch(expr string) {
	w.line("switch (", expr, ")")
	w.line("{")
}

// OpenSwitchCase opens `case value:` and indents its body.
func (w *Writer) OpenSwitchCase(value string) {
	w.line("case ", value, ":")
	w.indent++
}

// CloseSwitchCase writes `break;` and un-indents.
func (w *Writer) CloseSwitchCase() {
	w.line("break;")
	w.indent--
}

// OpenSwitchDefaultCase opens `default:` and indents its body.
func (w *Writer) OpenSwitchDefaultCase() {
	w.line("default:")
	w.indent++
}

// CloseSwitch closes the switch statement.
func (w *Writer) CloseSwitch() {
	w.line("}")
}
