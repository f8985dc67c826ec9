package parser_test

import (
	"strings"
	"testing"

	"github.com/proto2cpp/proto2cpp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyFileProducesEmptyModel(t *testing.T) {
	m, err := parser.ParseFile(parser.NewRegistry(), "Empty.proto", strings.NewReader("   \n\t "))
	require.NoError(t, err)
	assert.Empty(t, m.Package)
	assert.Empty(t, m.Imports)
	assert.Empty(t, m.Enums)
	assert.Empty(t, m.Messages)
}

func builtin(t *testing.T) *parser.Registry {
	t.Helper()
	return parser.Default()
}

func TestPackageAndImport(t *testing.T) {
	src := `
package demo.v1;
import "other.proto";
import public "pub.proto";
import weak "weak.proto";
`
	m, err := parser.ParseFile(builtin(t), "t.proto", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "demo.v1", m.Package)
	require.Len(t, m.Imports, 3)
	assert.Equal(t, "other.proto", m.Imports[0].Path)
}

func TestSecondPackageStatementLastWins(t *testing.T) {
	src := `
package first;
package second;
`
	m, err := parser.ParseFile(builtin(t), "t.proto", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "second", m.Package)
}

func TestMultipleEnumsInSourceOrder(t *testing.T) {
	src := `
enum colors { red = 0; green = 1; blue = 2; }
enum sizes  { small = 0; large = 1; }
`
	m, err := parser.ParseFile(builtin(t), "EnumMultiple.proto", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Enums, 2)
	assert.Equal(t, "colors", m.Enums[0].Name)
	assert.Equal(t, "sizes", m.Enums[1].Name)
	require.Len(t, m.Enums[0].Values, 3)
	assert.Equal(t, "blue", m.Enums[0].Values[2].Name)
	assert.EqualValues(t, 2, m.Enums[0].Values[2].Value)
}

func TestMessageWithFieldsAndDefault(t *testing.T) {
	src := `
message person {
  required string name = 1;
  optional int32 age = 2 [default = 0];
  repeated string alias = 3;
}
`
	m, err := parser.ParseFile(builtin(t), "MessageField.proto", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Messages, 1)
	p := m.Messages[0]
	require.Len(t, p.Fields, 3)

	assert.Equal(t, "name", p.Fields[0].Name)
	assert.EqualValues(t, 1, p.Fields[0].Index)

	age := p.Fields[1]
	assert.Equal(t, "age", age.Name)
	assert.True(t, age.HasDefault)
	assert.Equal(t, "0", age.DefaultValue)

	alias := p.Fields[2]
	assert.Equal(t, "alias", alias.Name)
}

func TestMessageFieldWithQuotedStringDefault(t *testing.T) {
	src := `
message greeting {
  optional string text = 1 [default = "hello"];
}
`
	m, err := parser.ParseFile(builtin(t), "QuotedDefault.proto", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Messages, 1)
	f := m.Messages[0].Fields[0]
	assert.True(t, f.HasDefault)
	assert.Equal(t, "hello", f.DefaultValue)
}

func TestEmptyEnumIsRejected(t *testing.T) {
	src := `
enum empty {
}
`
	_, err := parser.ParseFile(builtin(t), "EmptyEnum.proto", strings.NewReader(src))
	require.Error(t, err)
}

func TestOneofFieldsShareMessageScope(t *testing.T) {
	src := `
message messageOne {
  oneof pick { string sOne = 1; bool bOne = 2; int32 iOne = 3; }
}
`
	m, err := parser.ParseFile(builtin(t), "MessageOneof.proto", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Messages, 1)
	msg := m.Messages[0]
	require.Len(t, msg.Oneofs, 1)
	o := msg.Oneofs[0]
	require.Len(t, o.Fields, 3)
	assert.Equal(t, "sOne", o.Fields[0].Name)
	all := msg.AllFields()
	require.Len(t, all, 3)
}

func TestNestedMessageForwardReference(t *testing.T) {
	src := `
message outer {
  message inner {
    required int32 x = 1;
  }
  required inner i = 2;
}
`
	m, err := parser.ParseFile(builtin(t), "t.proto", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Messages, 1)
	outer := m.Messages[0]
	require.Len(t, outer.Messages, 1)
	assert.Equal(t, "inner", outer.Messages[0].Name)
	require.Len(t, outer.Fields, 1)
	assert.Equal(t, "Outer_Inner", outer.Messages[0].QualifiedCppName())
}

func TestUnexpectedEOFInsideMessageIsError(t *testing.T) {
	_, err := parser.ParseFile(builtin(t), "t.proto", strings.NewReader("message Foo {"))
	require.Error(t, err)
}

func TestUnrecognizedFieldOptionIsError(t *testing.T) {
	src := `
message Foo {
  optional int32 x = 1 [unknown = 1];
}
`
	_, err := parser.ParseFile(builtin(t), "t.proto", strings.NewReader(src))
	require.Error(t, err)
}

func TestIgnoredOptionLine(t *testing.T) {
	src := `
message Foo {
  option deprecated = true;
  required int32 x = 1;
}
`
	m, err := parser.ParseFile(builtin(t), "t.proto", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Messages, 1)
	require.Len(t, m.Messages[0].Fields, 1)
}
