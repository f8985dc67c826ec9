package generator

import "github.com/proto2cpp/proto2cpp/ast"

// cppScalarTypes maps a proto2 scalar keyword to its C++ backing type.
var cppScalarTypes = map[string]string{
	"double":   "double",
	"float":    "float",
	"int32":    "int32_t",
	"int64":    "int64_t",
	"uint32":   "uint32_t",
	"uint64":   "uint64_t",
	"sint32":   "int32_t",
	"sint64":   "int64_t",
	"fixed32":  "uint32_t",
	"fixed64":  "uint64_t",
	"sfixed32": "int32_t",
	"sfixed64": "int64_t",
}

// cppFieldType returns the C++ type of one occurrence of f — the
// singular value type, before any repeated-field wrapping.
func cppFieldType(f *ast.Field) string {
	switch f.Category {
	case ast.CategoryBool:
		return "bool"
	case ast.CategoryString:
		return "std::string"
	case ast.CategoryBytes:
		return "std::vector<uint8_t>"
	case ast.CategoryNumeric:
		if t, ok := cppScalarTypes[f.FieldType]; ok {
			return t
		}
		return "int32_t"
	case ast.CategoryEnum:
		if f.ResolvedEnum != nil {
			return f.ResolvedEnum.QualifiedCppName()
		}
		return f.FieldType
	case ast.CategoryMessage:
		if f.ResolvedMessage != nil {
			return f.ResolvedMessage.QualifiedCppName()
		}
		return f.FieldType
	default:
		return "int32_t"
	}
}

// isByReference reports whether accessors pass/return f's value type
// by const reference rather than by value.
func isByReference(f *ast.Field) bool {
	switch f.Category {
	case ast.CategoryString, ast.CategoryBytes, ast.CategoryMessage:
		return true
	default:
		return false
	}
}

// snakeCase lowercases name and inserts an underscore before each
// interior uppercase letter, converting a camelCase identifier (as
// oneof field names are typically written) into the accessor-method
// case the generator emits, e.g. "sOne" -> "s_one".
func snakeCase(name string) string {
	var b []byte
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b = append(b, '_')
			}
			b = append(b, c-'A'+'a')
		} else {
			b = append(b, c)
		}
	}
	return string(b)
}
