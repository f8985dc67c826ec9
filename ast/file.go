package ast

import (
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
)

// ProtoFile is the parsed schema of one .proto source file. It
// exclusively owns every Enum, Message, and Import reachable from it.
// The cursor fields exist only while a parser is populating the file;
// CompleteMessage, CompleteOneof and CompleteField clear them as each
// construct closes, and nothing outside this package should read them.
type ProtoFile struct {
	FileName string
	Package  string

	Imports  []*Import
	Enums    []*Enum
	Messages []*Message

	messageStack []*Message // innermost open message is the last element
	oneof        *Oneof     // set while inside a oneof body
	field        *Field     // the field awaiting its terminator/options
}

// NewProtoFile returns an empty model for the named source file.
func NewProtoFile(fileName string) *ProtoFile {
	return &ProtoFile{FileName: fileName}
}

// SetCurrentPackage sets the package that subsequently declared
// top-level enums/messages are stamped with. Per §9's open question,
// a second `package` statement before anything else is declared is
// tolerated and the last one wins — this is not enforced as an error.
func (p *ProtoFile) SetCurrentPackage(pkg string) {
	p.Package = pkg
}

// AddImport appends an import statement.
func (p *ProtoFile) AddImport(path string, vis Visibility) {
	p.Imports = append(p.Imports, &Import{Path: path, Visibility: vis})
}

// CurrentMessage returns the innermost message currently being
// populated, or nil if the cursor stack is empty.
func (p *ProtoFile) CurrentMessage() *Message {
	if len(p.messageStack) == 0 {
		return nil
	}
	return p.messageStack[len(p.messageStack)-1]
}

// AddEnum attaches a new enum to the innermost open message, or to the
// file itself if no message is open, and returns it.
func (p *ProtoFile) AddEnum(name string) *Enum {
	e := &Enum{Name: name, Package: p.Package}
	if cur := p.CurrentMessage(); cur != nil {
		e.Parent = cur
		e.Package = cur.Package
		cur.Enums = append(cur.Enums, e)
	} else {
		p.Enums = append(p.Enums, e)
	}
	return e
}

// AddEnumValue appends a value to the enum currently open at the top
// of enum parsing; the caller threads e through explicitly since enums
// have no nested-construct cursor of their own.
func (p *ProtoFile) AddEnumValue(e *Enum, name string, value int64) {
	e.Values = append(e.Values, &EnumValue{Name: name, Value: value})
}

// AddMessage attaches a new message to the innermost open message, or
// to the file if none is open, pushes it onto the cursor stack, and
// returns it.
func (p *ProtoFile) AddMessage(name string) *Message {
	m := &Message{Name: name, Package: p.Package}
	if cur := p.CurrentMessage(); cur != nil {
		m.Parent = cur
		m.Package = cur.Package
		cur.Messages = append(cur.Messages, m)
	} else {
		p.Messages = append(p.Messages, m)
	}
	p.messageStack = append(p.messageStack, m)
	return m
}

// CompleteMessage pops the innermost message off the cursor stack.
func (p *ProtoFile) CompleteMessage() {
	if len(p.messageStack) == 0 {
		return
	}
	p.messageStack = p.messageStack[:len(p.messageStack)-1]
}

// AddOneof opens a oneof on the current message and sets the oneof
// cursor so subsequent AddField calls attach to it.
func (p *ProtoFile) AddOneof(name string) *Oneof {
	cur := p.CurrentMessage()
	o := &Oneof{Name: name}
	if cur != nil {
		o.Package = cur.Package
		cur.Oneofs = append(cur.Oneofs, o)
	}
	p.oneof = o
	return o
}

// CompleteOneof clears the oneof cursor.
func (p *ProtoFile) CompleteOneof() {
	p.oneof = nil
}

// AddField attaches a field to the open oneof if one is set, otherwise
// to the innermost open message, and sets it as the field awaiting
// completion (options, then terminator). It is a parser error — the
// parser's responsibility, not this method's — to call AddField
// outside a message body.
func (p *ProtoFile) AddField(f *Field) {
	if p.oneof != nil {
		f.Requiredness = Optional
		p.oneof.Fields = append(p.oneof.Fields, f)
	} else if cur := p.CurrentMessage(); cur != nil {
		cur.Fields = append(cur.Fields, f)
	}
	p.field = f
}

// CurrentField returns the field awaiting completion, or nil.
func (p *ProtoFile) CurrentField() *Field { return p.field }

// SetDefaultValue records the current field's default, stripping
// surrounding quotes for a string-literal default.
func (p *ProtoFile) SetDefaultValue(value string) {
	if p.field == nil {
		return
	}
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	p.field.DefaultValue = value
	p.field.HasDefault = true
}

// SetFieldTypePackage sets the resolved package of the current
// field's user-defined type.
func (p *ProtoFile) SetFieldTypePackage(pkg string) {
	if p.field == nil {
		return
	}
	p.field.FieldTypePackage = pkg
}

// CompleteField clears the field cursor.
func (p *ProtoFile) CompleteField() {
	p.field = nil
}

// CursorsBalanced reports whether the message cursor stack is empty —
// the condition required at file start and file end.
func (p *ProtoFile) CursorsBalanced() bool {
	return len(p.messageStack) == 0
}

// EnrichFieldCategories walks every field in the file and classifies
// its FieldCategory: built-in keywords classify directly; anything
// else is resolved against the model's enums and messages by dotted
// path. An unresolved user type (the .proto referenced a type it does
// not declare) is a SchemaError.
func (p *ProtoFile) EnrichFieldCategories() error {
	enumsByPath := map[string]*Enum{}
	messagesByPath := map[string]*Message{}
	indexEnums(p.Enums, "", enumsByPath)
	indexMessages(p.Messages, "", enumsByPath, messagesByPath)
	for _, e := range p.Enums {
		if e.Package != "" {
			enumsByPath[dotted(e.Package, e.Name)] = e
		}
	}
	for _, m := range p.Messages {
		if m.Package != "" {
			indexMessages([]*Message{m}, m.Package, enumsByPath, messagesByPath)
		}
	}

	var walk func(m *Message) error
	walk = func(m *Message) error {
		for _, f := range m.AllFields() {
			if cat, ok := IsBuiltinType(f.FieldType); ok {
				f.Category = cat
				continue
			}
			if e, ok := resolveScoped(m, f.FieldType, enumsByPath); ok {
				f.Category = CategoryEnum
				f.FieldTypePackage = e.Package
				f.ResolvedEnum = e
				continue
			}
			if msg, ok := resolveScoped(m, f.FieldType, messagesByPath); ok {
				f.Category = CategoryMessage
				f.FieldTypePackage = msg.Package
				f.ResolvedMessage = msg
				continue
			}
			return xerrors.Schema("field %q: unknown type %q", qualifiedFieldName(m, f), f.FieldType)
		}
		for _, n := range m.Messages {
			if err := walk(n); err != nil {
				return err
			}
		}
		return nil
	}
	for _, m := range p.Messages {
		if err := walk(m); err != nil {
			return err
		}
	}
	return nil
}

func qualifiedFieldName(m *Message, f *Field) string {
	return m.Name + "." + f.Name
}

// dottedPath returns m's dotted path from the file root, using its
// as-written names, e.g. "Outer.Inner" — the scope a nested field
// type reference is resolved relative to.
func dottedPath(m *Message) string {
	if m.Parent == nil {
		return m.Name
	}
	return dottedPath(m.Parent) + "." + m.Name
}

// resolveScoped looks up typeName against index by trying it verbatim
// first (covers an already-qualified reference such as "Outer.Inner"
// or a package-qualified one), then relative to m's scope and each
// enclosing scope outward to the file root — the usual proto nested-
// type lookup order, without cross-file resolution (out of scope).
func resolveScoped[T any](m *Message, typeName string, index map[string]*T) (*T, bool) {
	if v, ok := index[typeName]; ok {
		return v, true
	}
	for scope := m; scope != nil; scope = scope.Parent {
		if v, ok := index[dottedPath(scope)+"."+typeName]; ok {
			return v, true
		}
	}
	return nil, false
}

func indexEnums(enums []*Enum, scope string, out map[string]*Enum) {
	for _, e := range enums {
		out[dotted(scope, e.Name)] = e
	}
}

func indexMessages(messages []*Message, scope string, enumsOut map[string]*Enum, out map[string]*Message) {
	for _, m := range messages {
		qualified := dotted(scope, m.Name)
		out[qualified] = m
		indexEnums(m.Enums, qualified, enumsOut)
		indexMessages(m.Messages, qualified, enumsOut, out)
	}
}

func dotted(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}
