package generator

import (
	"github.com/proto2cpp/proto2cpp/ast"
	"github.com/proto2cpp/proto2cpp/codewriter"
)

func emitSource(w *codewriter.Writer, file *ast.ProtoFile, base, headerName string) {
	w.WriteLine("// Generated by proto2cpp. DO NOT EDIT.")
	w.WriteIncludeProject(headerName)
	w.WriteBlankLine()

	if file.Package != "" {
		w.OpenNamespace(file.Package)
		w.WriteBlankLine()
	}

	for _, m := range file.Messages {
		for _, n := range m.NestedDepthFirst() {
			emitMessageSource(w, n)
		}
		emitMessageSource(w, m)
	}

	if file.Package != "" {
		w.CloseNamespace(file.Package)
	}
}

func emitMessageSource(w *codewriter.Writer, m *ast.Message) {
	className := m.QualifiedCppName()

	w.OpenConstructorImplementation(className, "", []string{"mData(std::make_shared<Data>())"})
	w.CloseConstructorImplementation()
	w.WriteBlankLine()

	w.OpenConstructorImplementation(className, "const "+className+" & other", []string{"mData(other.mData)"})
	w.CloseConstructorImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, "~"+className, "", "", false)
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, "operator=", className+" &", "const "+className+" & other", false)
	w.WriteLine(className, " copy(other);")
	w.WriteLine("swap(copy);")
	w.WriteLine("return *this;")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	w.OpenMethodImplementation(className, "swap", "void", className+" & other", false)
	w.WriteLine("mData.swap(other.mData);")
	w.CloseMethodImplementation()
	w.WriteBlankLine()

	emitClear(w, className, m)
	emitParse(w, className, m)
	emitSerialize(w, className, m)
	emitByteSize(w, className, m)
	emitValid(w, className, m)

	for _, f := range m.Fields {
		implementFieldAccessors(w, className, f)
	}
	for _, o := range m.Oneofs {
		implementOneofAccessors(w, className, o)
	}
}

func emitClear(w *codewriter.Writer, className string, m *ast.Message) {
	w.OpenMethodImplementation(className, "clear", "void", "", false)
	w.WriteLine("mData = std::make_shared<Data>();")
	w.CloseMethodImplementation()
	w.WriteBlankLine()
}

// emitParse writes the generated parse(data, length) body per §4.E.3:
// a varint length prefix, then a loop over field keys dispatching by
// field index, defaulting to a skip by wire type.
func emitParse(w *codewriter.Writer, className string, m *ast.Message) {
	w.OpenMethodImplementation(className, "parse", "size_t", "const uint8_t * data, size_t length", false)
	w.WriteLine("wire::Decoder outer(data, length);")
	w.WriteLine("uint64_t bodyLength = 0;")
	w.WriteLine("outer.decodeVarint(bodyLength);")
	w.WriteLine("wire::Decoder body(outer.data(), static_cast<size_t>(bodyLength));")
	w.WriteLine("clear();")
	w.OpenWhile("body.bytesLeft() > 0")
	w.WriteLine("uint32_t fieldIndex = 0;")
	w.WriteLine("wire::Type wireType;")
	w.WriteLine("body.decodeKey(fieldIndex, wireType);")
	w.OpenSwitch("fieldIndex")
	for _, f := range m.AllFields() {
		w.OpenSwitchCase("Data::k" + f.NamePascal() + "FieldIndex")
		writeParseFieldCase(w, m, f)
		w.CloseSwitchCase()
	}
	w.OpenSwitchDefaultCase()
	w.WriteLine("body.skip(wireType);")
	w.CloseSwitchCase()
	w.CloseSwitch()
	w.CloseWhile()
	w.WriteLine("return outer.consumed() + static_cast<size_t>(bodyLength);")
	w.CloseMethodImplementation()
	w.WriteBlankLine()
}

func writeParseFieldCase(w *codewriter.Writer, m *ast.Message, f *ast.Field) {
	name := snakeCase(f.Name)
	decoded := "body.decode" + parseDecodeSuffix(f) + "()"
	if f.Category == ast.CategoryEnum {
		decoded = "static_cast<" + cppFieldType(f) + ">(" + decoded + ")"
	}
	if f.Category == ast.CategoryBool {
		decoded = "(" + decoded + " != 0)"
	}
	if f.Requiredness == ast.Repeated {
		w.WriteLine("add_", name, "(", decoded, ");")
	} else {
		w.WriteLine("set_", name, "(", decoded, ");")
	}
}

func parseDecodeSuffix(f *ast.Field) string {
	switch f.Category {
	case ast.CategoryBool, ast.CategoryNumeric, ast.CategoryEnum:
		return "Varint"
	case ast.CategoryString:
		return "String"
	case ast.CategoryBytes:
		return "Bytes"
	case ast.CategoryMessage:
		return "Message<" + cppFieldType(f) + ">"
	default:
		return "Varint"
	}
}

// emitSerialize writes the generated serialize() body per §4.E.3:
// concatenate each field's own serialized form, then prefix the result
// with its length as a varint (an empty body is returned as-is). The
// key of an embedded message is written by the enclosing message's
// serialize(), not by the embedded message itself.
func emitSerialize(w *codewriter.Writer, className string, m *ast.Message) {
	w.OpenMethodImplementation(className, "serialize", "std::vector<uint8_t>", "", true)
	w.WriteLine("wire::Buffer body;")
	for _, f := range m.Fields {
		writeSerializeField(w, f)
	}
	for _, o := range m.Oneofs {
		writeSerializeOneof(w, o)
	}
	w.OpenIf("body.len() == 0")
	w.WriteLine("return {};")
	w.CloseIf()
	w.WriteLine("wire::Buffer framed;")
	w.WriteLine("framed.encodeVarint(body.len());")
	w.WriteLine("framed.append(body);")
	w.WriteLine("return framed.bytes();")
	w.CloseMethodImplementation()
	w.WriteBlankLine()
}

func writeSerializeField(w *codewriter.Writer, f *ast.Field) {
	wt := wireTypeFor(f)
	backing := "mData->" + backingFieldName(f)
	if f.Requiredness == ast.Repeated {
		w.WriteLine("for (const auto & element : ", backing, ")")
		w.WriteLine("{")
		w.WriteLineIndented("body.encodeKey(Data::k" + f.NamePascal() + "FieldIndex, " + wt + ");")
		w.WriteLineIndented("body.encode" + serializeEncodeSuffix(f) + "(element);")
		w.WriteLine("}")
		return
	}
	w.OpenIf("mData->" + presenceFlagName(f))
	w.WriteLine("body.encodeKey(Data::k", f.NamePascal(), "FieldIndex, ", wt, ");")
	w.WriteLine("body.encode", serializeEncodeSuffix(f), "(", backing, ");")
	w.CloseIf()
}

func writeSerializeOneof(w *codewriter.Writer, o *ast.Oneof) {
	enumName := choicesEnumName(o)
	choiceField := "mData->" + currentChoiceField(o)
	w.OpenSwitch(choiceField)
	for _, f := range o.Fields {
		w.OpenSwitchCase(enumName + "::" + f.Name)
		w.WriteLine("body.encodeKey(Data::k", f.NamePascal(), "FieldIndex, ", wireTypeFor(f), ");")
		w.WriteLine("body.encode", serializeEncodeSuffix(f), "(mData->", backingFieldName(f), ");")
		w.CloseSwitchCase()
	}
	w.OpenSwitchDefaultCase()
	w.CloseSwitchCase()
	w.CloseSwitch()
}

func wireTypeFor(f *ast.Field) string {
	switch f.Category {
	case ast.CategoryString, ast.CategoryBytes, ast.CategoryMessage:
		return "wire::Type::Bytes"
	default:
		return "wire::Type::Varint"
	}
}

func serializeEncodeSuffix(f *ast.Field) string {
	switch f.Category {
	case ast.CategoryString:
		return "StringBytes"
	case ast.CategoryBytes:
		return "RawBytes"
	case ast.CategoryMessage:
		return "Message"
	default:
		return "Varint"
	}
}

func emitByteSize(w *codewriter.Writer, className string, m *ast.Message) {
	w.OpenMethodImplementation(className, "byte_size", "size_t", "", true)
	w.WriteLine("std::vector<uint8_t> bytes = serialize();")
	w.WriteLine("return bytes.size();")
	w.CloseMethodImplementation()
	w.WriteBlankLine()
}

func emitValid(w *codewriter.Writer, className string, m *ast.Message) {
	w.OpenMethodImplementation(className, "valid", "bool", "", true)
	for _, f := range m.Fields {
		if f.Requiredness == ast.Required {
			w.OpenIf("!mData->" + presenceFlagName(f))
			w.WriteLine("return false;")
			w.CloseIf()
		}
	}
	w.WriteLine("return true;")
	w.CloseMethodImplementation()
	w.WriteBlankLine()
}
