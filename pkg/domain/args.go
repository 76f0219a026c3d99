package domain

import "sort"

// PositionalMarker is the reserved allow-list entry that declares a plugin
// accepts positional (bare) arguments in addition to key=value pairs.
const PositionalMarker = "+"

// Token is one lexed fragment of the argument line.
// An empty Name means the token is positional.
type Token struct {
	Name  string
	Value string
}

// Positional reports whether the token carried no name= prefix.
func (t Token) Positional() bool {
	return t.Name == ""
}

// AllowList is the immutable set of keyword names a plugin declares it
// understands, plus whether bare positional arguments are permitted.
type AllowList struct {
	names      map[string]struct{}
	positional bool
}

// NewAllowList builds an allow-list from the declared names.
// The PositionalMarker entry enables positional arguments and is not
// itself a keyword name.
func NewAllowList(names ...string) AllowList {
	al := AllowList{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == PositionalMarker {
			al.positional = true
			continue
		}
		if name != "" {
			al.names[name] = struct{}{}
		}
	}
	return al
}

// Allows reports whether the keyword name is declared.
func (al AllowList) Allows(name string) bool {
	_, ok := al.names[name]
	return ok
}

// AcceptsPositional reports whether bare arguments are permitted.
func (al AllowList) AcceptsPositional() bool {
	return al.positional
}

// Names returns the declared keyword names in sorted order.
func (al AllowList) Names() []string {
	out := make([]string, 0, len(al.names))
	for name := range al.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Args is the validated result of one argument line.
//
// Bindings holds the decoded value per accepted keyword; when a name repeats
// on the line the last occurrence wins. Tokens preserves every accepted
// token in lexing order (repeats included), and Positionals keeps the bare
// values in the order they appeared.
type Args struct {
	Bindings    map[string]string
	Positionals []string
	Tokens      []Token
}

// Get returns the bound value for name, or "" when absent.
func (a *Args) Get(name string) string {
	if a == nil {
		return ""
	}
	return a.Bindings[name]
}

// Has reports whether name was bound on the line.
func (a *Args) Has(name string) bool {
	if a == nil {
		return false
	}
	_, ok := a.Bindings[name]
	return ok
}
