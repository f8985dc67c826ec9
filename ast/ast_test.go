package ast_test

import (
	"testing"

	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFieldCategory(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	p.SetCurrentPackage("demo")
	m := p.AddMessage("Point")
	p.AddField(&ast.Field{Requiredness: ast.Required, FieldType: "int32", Name: "x", Index: 1})
	p.CompleteField()
	p.AddField(&ast.Field{Requiredness: ast.Required, FieldType: "string", Name: "label", Index: 2})
	p.CompleteField()
	p.CompleteMessage()

	require.NoError(t, p.EnrichFieldCategories())
	assert.Equal(t, ast.CategoryNumeric, m.Fields[0].Category)
	assert.Equal(t, ast.CategoryString, m.Fields[1].Category)
}

func TestEnrichResolvesSiblingMessageByBareName(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	outer := p.AddMessage("Outer")
	p.AddMessage("Inner")
	p.CompleteMessage() // close Inner
	p.AddField(&ast.Field{Requiredness: ast.Required, FieldType: "Inner", Name: "child", Index: 1})
	p.CompleteField()
	p.CompleteMessage() // close Outer

	require.NoError(t, p.EnrichFieldCategories())
	require.Len(t, outer.Fields, 1)
	assert.Equal(t, ast.CategoryMessage, outer.Fields[0].Category)
}

func TestEnrichResolvesFullyQualifiedReference(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	p.AddMessage("Outer")
	p.AddMessage("Inner")
	p.CompleteMessage()
	p.CompleteMessage()

	other := p.AddMessage("Other")
	p.AddField(&ast.Field{Requiredness: ast.Required, FieldType: "Outer.Inner", Name: "ref", Index: 1})
	p.CompleteField()
	p.CompleteMessage()

	require.NoError(t, p.EnrichFieldCategories())
	assert.Equal(t, ast.CategoryMessage, other.Fields[0].Category)
}

func TestEnrichResolvesEnumDeclaredAtFileScope(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	e := p.AddEnum("Color")
	p.AddEnumValue(e, "RED", 0)

	m := p.AddMessage("Widget")
	p.AddField(&ast.Field{Requiredness: ast.Required, FieldType: "Color", Name: "c", Index: 1})
	p.CompleteField()
	p.CompleteMessage()

	require.NoError(t, p.EnrichFieldCategories())
	assert.Equal(t, ast.CategoryEnum, m.Fields[0].Category)
}

func TestEnrichRejectsUnknownType(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	p.AddMessage("Widget")
	p.AddField(&ast.Field{Requiredness: ast.Required, FieldType: "Nope", Name: "c", Index: 1})
	p.CompleteField()
	p.CompleteMessage()

	err := p.EnrichFieldCategories()
	require.Error(t, err)
}

func TestAllFieldsIncludesOneofFieldsInOrder(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	m := p.AddMessage("Msg")
	p.AddField(&ast.Field{Requiredness: ast.Required, FieldType: "int32", Name: "a", Index: 1})
	p.CompleteField()
	p.AddOneof("choice")
	p.AddField(&ast.Field{FieldType: "int32", Name: "b", Index: 2})
	p.CompleteField()
	p.AddField(&ast.Field{FieldType: "int32", Name: "c", Index: 3})
	p.CompleteField()
	p.CompleteOneof()
	p.AddField(&ast.Field{Requiredness: ast.Required, FieldType: "int32", Name: "d", Index: 4})
	p.CompleteField()
	p.CompleteMessage()

	all := m.AllFields()
	require.Len(t, all, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{all[0].Name, all[1].Name, all[2].Name, all[3].Name})
	assert.Equal(t, ast.Optional, all[1].Requiredness)
}

func TestOneofFieldsAttachToCurrentOneof(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	m := p.AddMessage("Msg")
	o := p.AddOneof("choice")
	p.AddField(&ast.Field{FieldType: "int32", Name: "b", Index: 1})
	p.CompleteField()
	p.CompleteOneof()
	p.CompleteMessage()

	require.Len(t, o.Fields, 1)
	require.Len(t, m.Fields, 0)
}

func TestQualifiedCppNameMangling(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	outer := p.AddMessage("Outer")
	inner := p.AddMessage("Inner")
	innermost := p.AddMessage("Deep")
	p.CompleteMessage()
	p.CompleteMessage()
	p.CompleteMessage()

	assert.Equal(t, "Outer", outer.QualifiedCppName())
	assert.Equal(t, "Outer_Inner", inner.QualifiedCppName())
	assert.Equal(t, "Outer_Inner_Deep", innermost.QualifiedCppName())
}

func TestNestedDepthFirstIsInnermostFirst(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	outer := p.AddMessage("Outer")
	p.AddMessage("Inner")
	p.AddMessage("Deep")
	p.CompleteMessage()
	p.CompleteMessage()
	p.CompleteMessage()

	nested := outer.NestedDepthFirst()
	require.Len(t, nested, 2)
	assert.Equal(t, "Deep", nested[0].Name)
	assert.Equal(t, "Inner", nested[1].Name)
}

func TestCursorsBalanced(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	assert.True(t, p.CursorsBalanced())
	p.AddMessage("M")
	assert.False(t, p.CursorsBalanced())
	p.CompleteMessage()
	assert.True(t, p.CursorsBalanced())
}

func TestSetDefaultValueStripsQuotes(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	p.AddMessage("M")
	p.AddField(&ast.Field{FieldType: "string", Name: "s", Index: 1})
	p.SetDefaultValue(`"hi"`)
	f := p.CurrentField()
	require.NotNil(t, f)
	assert.Equal(t, "hi", f.DefaultValue)
	assert.True(t, f.HasDefault)
}

func TestSecondPackageStatementWins(t *testing.T) {
	p := ast.NewProtoFile("t.proto")
	p.SetCurrentPackage("first")
	p.SetCurrentPackage("second")
	assert.Equal(t, "second", p.Package)
}

func TestNamePascalConversion(t *testing.T) {
	f := &ast.Field{Name: "field_name_here"}
	assert.Equal(t, "FieldNameHere", f.NamePascal())
}
