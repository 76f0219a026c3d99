package response

import "strings"

// FieldKind discriminates how a response member's value is rendered.
type FieldKind int

const (
	// KindRaw inserts the value verbatim as a JSON literal. The caller is
	// responsible for it being valid JSON (booleans, numbers, nested
	// arrays or objects).
	KindRaw FieldKind = iota
	// KindString escapes and quotes the value as a JSON string.
	KindString
	// KindVar resolves the field name against the variable set and emits
	// the result escaped and quoted. A missing variable resolves to "".
	KindVar
)

// Field is one member of the response object.
type Field struct {
	Kind  FieldKind
	Name  string
	Value string
}

// Raw builds a field whose value is inserted verbatim.
func Raw(name, literal string) Field {
	return Field{Kind: KindRaw, Name: name, Value: literal}
}

// String builds a field whose value is escaped and quoted.
func String(name, text string) Field {
	return Field{Kind: KindString, Name: name, Value: text}
}

// Var builds a field resolved from the variable set at format time.
func Var(name string) Field {
	return Field{Kind: KindVar, Name: name}
}

// Vars is the explicit name-to-value mapping Var fields resolve against.
// Business logic populates it and hands it to the emitter; a name that
// was never set resolves to the empty string.
type Vars map[string]string

// ParseField interprets the compact string form of a field spec:
//
//	name="text" or name=text  -> String (one layer of surrounding quotes stripped)
//	name:literal              -> Raw
//	name                      -> Var
//
// When a token contains both separators, an '=' appearing before any ':'
// wins, so "msg=a:b" is the string literal "a:b".
func ParseField(spec string) Field {
	eq := strings.IndexByte(spec, '=')
	colon := strings.IndexByte(spec, ':')

	if eq > 0 && (colon < 0 || eq < colon) {
		value := spec[eq+1:]
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		return String(spec[:eq], value)
	}
	if colon > 0 {
		return Raw(spec[:colon], spec[colon+1:])
	}
	return Var(spec)
}

// FormatArray renders items as a JSON array of strings.
func FormatArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(Escape(item))
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}

// FormatObject renders the fields as a flat JSON object. The extra names
// are appended as additional Var fields after the explicit ones; the
// capture path uses this to attach stdout/stderr when non-empty.
func FormatObject(fields []Field, extra []string, vars Vars) string {
	var b strings.Builder
	b.WriteByte('{')
	n := 0
	write := func(f Field) {
		if n > 0 {
			b.WriteString(", ")
		}
		n++
		b.WriteByte('"')
		b.WriteString(Escape(f.Name))
		b.WriteString(`": `)
		switch f.Kind {
		case KindRaw:
			b.WriteString(f.Value)
		case KindString:
			b.WriteByte('"')
			b.WriteString(Escape(f.Value))
			b.WriteByte('"')
		case KindVar:
			b.WriteByte('"')
			b.WriteString(Escape(vars[f.Name]))
			b.WriteByte('"')
		}
	}
	for _, f := range fields {
		write(f)
	}
	for _, name := range extra {
		write(Var(name))
	}
	b.WriteByte('}')
	return b.String()
}
