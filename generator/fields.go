package generator

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/codewriter"
)

// backingFieldName is the private storage member for f, e.g. "age" -> "mAge".
func backingFieldName(f *ast.Field) string { return "m" + f.NamePascal() }

// presenceFlagName is the private bool tracking whether a singular,
// non-oneof field has been explicitly set.
func presenceFlagName(f *ast.Field) string { return backingFieldName(f) + "Set" }

// declareFieldAccessors writes one field's accessor declarations,
// per the category x requiredness matrix in §4.E.1.
func declareFieldAccessors(w *codewriter.Writer, f *ast.Field) {
	name := snakeCase(f.Name)
	cppType := cppFieldType(f)
	valueType := cppType
	if isByReference(f) {
		valueType = "const " + cppType + " &"
	}
	returnType := cppType
	if isByReference(f) {
		returnType = "const " + cppType + " &"
	}

	if f.Requiredness != ast.Repeated {
		w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "has_" + name, ReturnType: "bool", Const: true})
		w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: name, ReturnType: returnType, Const: true})
		w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "set_" + name, ReturnType: "void", Parameters: valueType + " value"})
		if f.Category == ast.CategoryMessage {
			w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "create_new_" + name, ReturnType: cppType + " &"})
		}
		w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "clear_" + name, ReturnType: "void"})
		return
	}

	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "size_" + name, ReturnType: "size_t", Const: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: name, ReturnType: returnType, Parameters: "size_t index", Const: true})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "set_" + name, ReturnType: "void", Parameters: "size_t index, " + valueType + " value"})
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "add_" + name, ReturnType: "void", Parameters: valueType + " value"})
	if f.Category == ast.CategoryMessage {
		w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "add_new_" + name, ReturnType: cppType + " &"})
	}
	w.WriteClassMethodDeclaration(codewriter.MethodDecl{Name: "clear_" + name, ReturnType: "void"})
}

// declareFieldBackingStorage writes the Data block's member for f.
func declareFieldBackingStorage(w *codewriter.Writer, f *ast.Field) {
	cppType := cppFieldType(f)
	if f.Requiredness == ast.Repeated {
		w.WriteClassFieldDeclaration(backingFieldName(f), "std::vector<"+cppType+">", false, false, "")
		return
	}
	w.WriteClassFieldDeclaration(backingFieldName(f), cppType, false, false, defaultValueExpr(f))
	w.WriteClassFieldDeclaration(presenceFlagName(f), "bool", false, false, "false")
}

// defaultValueExpr renders f's declared default, or the type's zero
// value if none was given.
func defaultValueExpr(f *ast.Field) string {
	if f.HasDefault {
		switch f.Category {
		case ast.CategoryString:
			return `"` + f.DefaultValue + `"`
		default:
			return f.DefaultValue
		}
	}
	switch f.Category {
	case ast.CategoryBool:
		return "false"
	case ast.CategoryNumeric:
		return "0"
	case ast.CategoryEnum:
		return "static_cast<" + cppFieldType(f) + ">(0)"
	case ast.CategoryString:
		return `""`
	default:
		return ""
	}
}

// implementFieldAccessors writes the method bodies for a direct
// (non-oneof) field's accessors.
func implementFieldAccessors(w *codewriter.Writer, className string, f *ast.Field) {
	name := snakeCase(f.Name)
	cppType := cppFieldType(f)
	valueType := cppType
	returnType := cppType
	if isByReference(f) {
		valueType = "const " + cppType + " &"
		returnType = "const " + cppType + " &"
	}
	backing := backingFieldName(f)
	presence := presenceFlagName(f)

	if f.Requiredness != ast.Repeated {
		w.OpenMethodImplementation(className, "has_"+name, "bool", "", true)
		w.WriteLine("return mData->", presence, ";")
		w.CloseMethodImplementation()
		w.WriteBlankLine()

		w.OpenMethodImplementation(className, name, returnType, "", true)
		w.WriteLine("return mData->", backing, ";")
		w.CloseMethodImplementation()
		w.WriteBlankLine()

		w.OpenMethodImplementation(className, "set_"+name, "void", valueType+" value", false)
		w.WriteLine("mData->", backing, " = value;")
		w.WriteLine("mData->", presence, " = true;")
		w.CloseMethodImplementation()
		w.WriteBlankLine()

		if f.Category == ast.CategoryMessage {
			w.OpenMethodImplementation(className, "create_new_"+name, cppType+" &", "", false)
			w.WriteLine("mData->", backing, " = ", cppType, "();")
			w.WriteLine("mData->", presence, " = true;")
			w.WriteLine("return mData->", backing, ";")
			w.CloseMethodImplementation()
			w.WriteBlankLine()
		}

		w.OpenMethodImplementation(className, "clear_"+name, "void", "", false)
		w.WriteLine("mData->", backing, " = ", defaultValueExpr(f), ";")
		w.WriteLine("mData->", presence, " = false;")
		w.CloseMethodImplementation()
		w.WriteBlankLine()
		return
	}

	w.OpenMethodImplementation(className, "size_"+name, "size_t", "", true)
	w.WriteLine("return mData->", backing, ".size();")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, name, returnType, "size_t index", true)
	w.WriteLine("return mData->", backing, ".at(index);")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, "set_"+name, "void", "size_t index, "+valueType+" value", false)
	w.WriteLine("mData->", backing, ".at(index) = value;")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, "add_"+name, "void", valueType+" value", false)
	w.WriteLine("mData->", backing, ".push_back(value);")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	if f.Category == ast.CategoryMessage {
		w.OpenMethodImplementation(className, "add_new_"+name, cppType+" &", "", false)
		w.WriteLine("mData->", backing, ".push_back(", cppType, "());")
		w.WriteLine("return mData->", backing, ".back();")
		w.CloseMethodImplementation()
		w.WriteBlankLine()
	}

	w.OpenMethodImplementation(className, "clear_"+name, "void", "", false)
	w.WriteLine("mData->", backing, ".clear();")
	w.CloseMethodImplementation()
	w.WriteBlankLine()
}
