package generator

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/codewriter"
)

// choicesEnumName is the oneof's generated "GChoices" enum name.
func choicesEnumName(o *ast.Oneof) string { return o.NamePascal() + "Choices" }

// currentChoiceField is the oneof's backing current-selection member.
func currentChoiceField(o *ast.Oneof) string { return "m" + o.NamePascal() + "Choice" }

// declareOneofAccessors writes the GChoices enum, the current-choice
// and clear accessors, and every member field's singular accessor
// set — per §4.E.2.
func declareOneofAccessors(w *codewriter.Writer, o *ast.Oneof) {
	enumName := choicesEnumName(o)
	w.OpenEnum(enumName)
	w.WriteEnumValueFirst("none", 0)
	for i, f := range o.Fields {
		w.WriteEnumValueSubsequent(f.Name, int64(i+1))
	}
	w.CloseEnum()
	w.WriteBlankLine()

	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "current_" + snakeCase(o.Name) + "_choice", ReturnType: enumName, Const: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "clear_" + snakeCase(o.Name), ReturnType: "void"})
	for _, f := range o.Fields {
		declareFieldAccessors(w, f)
	}
}

// declareOneofBackingStorage writes the Data block's members for a
// oneof: the current-choice enum value and each field's own storage.
func declareOneofBackingStorage(w *codewriter.Writer, o *ast.Oneof) {
	w.WriteClassFieldDeclaration(currentChoiceField(o), choicesEnumName(o), false, false, choicesEnumName(o)+"::none")
	for _, f := range o.Fields {
		w.WriteClassFieldDeclaration(backingFieldName(f), cppFieldType(f), false, false, defaultValueExpr(f))
	}
}

// implementOneofAccessors writes the method bodies for a oneof's
// current-choice/clear accessors and each member field's singular
// accessors, with has_fi/set_fi/create_new_fi tied to the current choice.
func implementOneofAccessors(w *codewriter.Writer, className string, o *ast.Oneof) {
	enumName := choicesEnumName(o)
	choiceField := currentChoiceField(o)
	oneofName := snakeCase(o.Name)

	w.OpenMethodImplementation(className, "current_"+oneofName+"_choice", enumName, "", true)
	w.WriteLine("return mData->", choiceField, ";")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, "clear_"+oneofName, "void", "", false)
	w.WriteLine("mData->", choiceField, " = ", enumName, "::none;")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	for _, f := range o.Fields {
		implementOneofFieldAccessors(w, className, o, f)
	}
}

func implementOneofFieldAccessors(w *codewriter.Writer, className string, o *ast.Oneof, f *ast.Field) {
	name := snakeCase(f.Name)
	cppType := cppFieldType(f)
	valueType := cppType
	returnType := cppType
	if isByReference(f) {
		valueType = "const " + cppType + " &"
		returnType = "const " + cppType + " &"
	}
	backing := backingFieldName(f)
	enumName := choicesEnumName(o)
	choiceField := currentChoiceField(o)
	tag := enumName + "::" + f.Name

	w.OpenMethodImplementation(className, "has_"+name, "bool", "", true)
	w.WriteLine("return mData->", choiceField, " == ", tag, ";")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, name, returnType, "", true)
	w.WriteLine("return mData->", backing, ";")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, "set_"+name, "void", valueType+" value", false)
	w.WriteLine("mData->", backing, " = value;")
	w.WriteLine("mData->", choiceField, " = ", tag, ";")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	if f.Category == ast.CategoryMessage {
		w.OpenMethodImplementation(className, "create_new_"+name, cppType+" &", "", false)
		w.WriteLine("mData->", backing, " = ", cppType, "();")
		w.WriteLine("mData->", choiceField, " = ", tag, ";")
		w.WriteLine("return mData->", backing, ";")
		w.CloseMethodImplementation()
		w.WriteBlankLine()
	}

	w.OpenMethodImplementation(className, "clear_"+name, "void", "", false)
	w.WriteLine("mData->", backing, " = ", defaultValueExpr(f), ";")
	w.OpenIf("mData->" + choiceField + " == " + tag)
	w.WriteLine("mData->", choiceField, " = ", enumName, "::none;")
	w.CloseIf()
	w.CloseMethodImplementation()
	w.WriteBlankLine()
}
