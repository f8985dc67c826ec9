// Package ast is the schema model a parsed .proto file is built into:
// the file itself, its imports, its top-level and nested enums and
// messages, and the oneof groups and fields inside them. It is the Go
// analogue of protogen.File/Message/Field/Oneof/Enum, generalized from
// a Go-targeting plugin input to a proto2 grammar's own AST.
//
// Everything under ProtoFile is owned by it; nothing here is safe to
// share across files. The cursor fields (messageStack, oneof, field) exist
// only while a parse is in progress and are nil again once the parse
// returns.
package ast

import "strings"

// Visibility is how an import statement was written.
type Visibility int

const (
	VisibilityNormal Visibility = iota
	VisibilityPublic
	VisibilityWeak
)

// Import is one `import [public|weak] "path";` statement.
type Import struct {
	Path       string
	Visibility Visibility
}

// Requiredness is whether a field is required, optional, or repeated.
type Requiredness int

const (
	Required Requiredness = iota
	Optional
	Repeated
)

func (r Requiredness) String() string {
	switch r {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Repeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// FieldCategory is the coarse kind of a field's type, computed during
// post-parse enrichment once field_type has been classified against
// the built-in keyword set or resolved against the model.
type FieldCategory int

const (
	CategoryUnknown FieldCategory = iota
	CategoryBool
	CategoryNumeric
	CategoryEnum
	CategoryString
	CategoryBytes
	CategoryMessage
)

// builtinFieldTypes is the proto2 scalar keyword set. bool, string and
// bytes classify to their own categories; everything else numeric-like
// classifies to CategoryNumeric.
var builtinFieldTypes = map[string]FieldCategory{
	"bool":     CategoryBool,
	"string":   CategoryString,
	"bytes":    CategoryBytes,
	"double":   CategoryNumeric,
	"float":    CategoryNumeric,
	"int32":    CategoryNumeric,
	"int64":    CategoryNumeric,
	"uint32":   CategoryNumeric,
	"uint64":   CategoryNumeric,
	"sint32":   CategoryNumeric,
	"sint64":   CategoryNumeric,
	"fixed32":  CategoryNumeric,
	"fixed64":  CategoryNumeric,
	"sfixed32": CategoryNumeric,
	"sfixed64": CategoryNumeric,
}

// IsBuiltinType reports whether name is one of the proto2 scalar
// keywords rather than a user-defined message or enum reference.
func IsBuiltinType(name string) (FieldCategory, bool) {
	c, ok := builtinFieldTypes[name]
	return c, ok
}

// Field is a single message field, whether declared directly in a
// message body or inside one of its oneofs.
type Field struct {
	Requiredness     Requiredness
	FieldType        string // raw, as written: a keyword or a dotted user type
	FieldTypePackage string // dotted scope of the resolved user type, set during enrichment
	Name             string
	Index            uint32
	DefaultValue     string // string form as written; empty if absent
	HasDefault       bool
	Category         FieldCategory

	// ResolvedEnum and ResolvedMessage point at the declaration FieldType
	// names during EnrichFieldCategories, for a CategoryEnum or
	// CategoryMessage field respectively. Both are nil until then, and
	// only one is ever set.
	ResolvedEnum    *Enum
	ResolvedMessage *Message
}

// NamePascal renders Name in PascalCase for C++ identifier emission,
// following the original's `namePascal()` convention: split on
// underscores, capitalize the first letter of each piece, rejoin.
func (f *Field) NamePascal() string { return pascalCase(f.Name) }

// Oneof is a named group of fields sharing the enclosing message's
// index space, of which at most one may be set at a time.
type Oneof struct {
	Name    string
	Package string
	Fields  []*Field
}

// NamePascal renders Name in PascalCase.
func (o *Oneof) NamePascal() string { return pascalCase(o.Name) }

// EnumValue is one `name = value;` line inside an enum body.
type EnumValue struct {
	Name  string
	Value int64
}

// Enum is a top-level or nested enum declaration.
type Enum struct {
	Name    string
	Package string
	Values  []*EnumValue

	// Parent is set when this enum is nested inside a message; nil for
	// a top-level enum.
	Parent *Message
}

// NamePascal renders Name in PascalCase.
func (e *Enum) NamePascal() string { return pascalCase(e.Name) }

// Message is a top-level or nested message declaration.
type Message struct {
	Name    string
	Package string

	Fields   []*Field // direct, non-oneof fields, in declaration order
	Messages []*Message
	Enums    []*Enum
	Oneofs   []*Oneof

	// Parent is set when this message is nested inside another message;
	// nil for a top-level message.
	Parent *Message
}

// NamePascal renders Name in PascalCase.
func (m *Message) NamePascal() string { return pascalCase(m.Name) }

// QualifiedCppName returns the mangled flat name used for a nested
// message or enum: "<Outer>_<Outer2>_<Inner>", matching §4.E's
// <Outer>_<Nested> mangling convention, extended transitively for
// messages nested more than one level deep.
func (m *Message) QualifiedCppName() string {
	if m.Parent == nil {
		return m.NamePascal()
	}
	return m.Parent.QualifiedCppName() + "_" + m.NamePascal()
}

// QualifiedCppName returns the mangled flat name for an enum nested
// inside one or more messages; equal to NamePascal for a top-level enum.
func (e *Enum) QualifiedCppName() string {
	if e.Parent == nil {
		return e.NamePascal()
	}
	return e.Parent.QualifiedCppName() + "_" + e.NamePascal()
}

// AllFields returns the message's direct fields followed by every
// oneof's fields, in declaration order — the space within which field
// indices must be unique per §3's invariant.
func (m *Message) AllFields() []*Field {
	all := make([]*Field, 0, len(m.Fields))
	all = append(all, m.Fields...)
	for _, o := range m.Oneofs {
		all = append(all, o.Fields...)
	}
	return all
}

// NestedDepthFirst returns every message nested (transitively) inside
// m, innermost first — the order the generator needs for forward
// declarations (§4.E.1).
func (m *Message) NestedDepthFirst() []*Message {
	var out []*Message
	for _, n := range m.Messages {
		out = append(out, n.NestedDepthFirst()...)
		out = append(out, n)
	}
	return out
}

// AllNestedEnums returns every enum declared in m or in any message
// nested (transitively) inside m, in declaration order.
func (m *Message) AllNestedEnums() []*Enum {
	var out []*Enum
	out = append(out, m.Enums...)
	for _, n := range m.Messages {
		out = append(out, n.AllNestedEnums()...)
	}
	return out
}

func pascalCase(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}
