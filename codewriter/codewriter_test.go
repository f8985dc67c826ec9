package codewriter_test

import (
	"testing"

	"github.com/proto2cpp/proto2cpp/codewriter"
	"github.com/stretchr/testify/assert"
)

func TestIncludeGuardAndIncludes(t *testing.T) {
	w := codewriter.New()
	w.OpenIncludeGuard("FOO_PROTOCOL_H")
	w.WriteIncludeLibrary("cstdint")
	w.WriteIncludeProject("Bar.protocol.h")
	w.WriteBlankLine()
	w.CloseIncludeGuard("FOO_PROTOCOL_H")

	want := "#ifndef FOO_PROTOCOL_H\n#define FOO_PROTOCOL_H\n#include <cstdint>\n#include \"Bar.protocol.h\"\n\n#endif  // FOO_PROTOCOL_H\n"
	assert.Equal(t, want, w.String())
}

func TestEnumShape(t *testing.T) {
	w := codewriter.New()
	w.OpenEnum("Colors")
	w.WriteEnumValueFirst("red", 0)
	w.WriteEnumValueSubsequent("green", 1)
	w.CloseEnum()

	want := "enum class Colors\n{\n    red = 0\n    , green = 1\n};\n"
	assert.Equal(t, want, w.String())
}

func TestClassWithMethodDeclaration(t *testing.T) {
	w := codewriter.New()
	w.OpenClass("Person", "")
	w.WriteClassPublic()
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "name", ReturnType: "const std::string &", Const: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "~Person", Virtual: true})
	w.CloseClass()

	got := w.String()
	assert.Contains(t, got, "class Person\n{")
	assert.Contains(t, got, "const std::string & name() const;")
	assert.Contains(t, got, "virtual ~Person();")
}

func TestIfElseIfElse(t *testing.T) {
	w := codewriter.New()
	w.OpenIf("x == 1")
	w.WriteLine("doOne();")
	w.OpenElseIf("x == 2")
	w.WriteLine("doTwo();")
	w.OpenElse()
	w.WriteLine("doOther();")
	w.CloseIf()

	got := w.String()
	assert.Contains(t, got, "if (x == 1)")
	assert.Contains(t, got, "else if (x == 2)")
	assert.Contains(t, got, "else")
}

func TestSwitchCase(t *testing.T) {
	w := codewriter.New()
	w.OpenSwitch("fieldIndex")
	w.OpenSwitchCase("1")
	w.WriteLine("parseName(pData);")
	w.CloseSwitchCase()
	w.OpenSwitchDefaultCase()
	w.WriteLine("skip(wireType);")
	w.CloseSwitchCase()
	w.CloseSwitch()

	got := w.String()
	assert.Contains(t, got, "case 1:")
	assert.Contains(t, got, "default:")
	assert.Contains(t, got, "break;")
}

func TestConstructorImplementationMemberInitializerList(t *testing.T) {
	w := codewriter.New()
	w.OpenConstructorImplementation("Person", "", []string{"mData(std::make_shared<Data>())"})
	w.CloseConstructorImplementation()

	want := "Person::Person()\n    : mData(std::make_shared<Data>())\n{\n}\n"
	assert.Equal(t, want, w.String())
}
