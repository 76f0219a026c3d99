// Package args tokenizes and validates the single argument line the
// orchestrator hands a plugin: whitespace-delimited key=value pairs and
// optional positionals, with shell-like double quoting.
package args

import (
	"fmt"

	"github.com/aretw0/modkit/pkg/domain"
)

// MalformedLineError reports an argument line that cannot be tokenized,
// carrying the name being parsed (empty for a positional) and the
// unconsumed remainder of the line.
type MalformedLineError struct {
	Name string
	Rest string
}

func (e *MalformedLineError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%v: unterminated quote in value for %q (remainder: %q)", domain.ErrMalformedLine, e.Name, e.Rest)
	}
	return fmt.Sprintf("%v: unterminated quote (remainder: %q)", domain.ErrMalformedLine, e.Rest)
}

func (e *MalformedLineError) Unwrap() error {
	return domain.ErrMalformedLine
}

// Lexer scans one argument line into tokens. It is a character-scanning
// state machine over the remaining unparsed suffix, one token per Scan.
//
//	lex := args.NewLexer(line)
//	for lex.Scan() {
//	    tok := lex.Token()
//	    ...
//	}
//	if err := lex.Err(); err != nil { ... }
type Lexer struct {
	rest string
	tok  domain.Token
	err  error
}

// NewLexer starts a lexer at the beginning of line.
func NewLexer(line string) *Lexer {
	return &Lexer{rest: line}
}

// Token returns the token produced by the last successful Scan.
func (l *Lexer) Token() domain.Token {
	return l.tok
}

// Err returns the fatal parse failure that stopped scanning, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Scan consumes the next token. It returns false at end of line or on a
// fatal parse failure (check Err to distinguish).
func (l *Lexer) Scan() bool {
	if l.err != nil {
		return false
	}

	// Skip leading spaces.
	i := 0
	for i < len(l.rest) && l.rest[i] == ' ' {
		i++
	}
	l.rest = l.rest[i:]
	if l.rest == "" {
		return false
	}

	// A run of non-space, non-equals characters followed by '=' is a
	// named token; anything else is positional.
	name := ""
	if n := nameLen(l.rest); n > 0 {
		name = l.rest[:n]
		l.rest = l.rest[n+1:]
	}

	value, rest, err := l.scanValue(name)
	if err != nil {
		l.err = err
		return false
	}
	l.rest = rest
	l.tok = domain.Token{Name: name, Value: value}
	return true
}

// nameLen returns the length of the name prefix when s starts a named
// token, 0 otherwise.
func nameLen(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '=':
			return i
		case ' ':
			return 0
		}
	}
	return 0
}

// scanValue consumes one raw value from the front of l.rest. Quoted
// values run to the first closing quote that is not escaped; escaped
// quotes keep their backslash (decoding happens later, in Parse).
func (l *Lexer) scanValue(name string) (value, rest string, err error) {
	s := l.rest
	if len(s) > 0 && s[0] == '"' {
		for i := 1; i < len(s); i++ {
			if s[i] == '"' && !escaped(s, i) {
				return s[1:i], s[i+1:], nil
			}
		}
		return "", "", &MalformedLineError{Name: name, Rest: s}
	}

	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && !escaped(s, i) {
			return s[:i], s[i:], nil
		}
	}
	return s, "", nil
}

// escaped reports whether the character at s[i] is preceded by a single
// backslash that is not itself part of an escaped backslash. The rule is
// a precise two-character lookback: `\"` continues the value while `\\"`
// is an escaped backslash followed by a real delimiter.
func escaped(s string, i int) bool {
	if i < 1 || s[i-1] != '\\' {
		return false
	}
	return i < 2 || s[i-2] != '\\'
}

// Tokens lexes the whole line at once.
func Tokens(line string) ([]domain.Token, error) {
	lex := NewLexer(line)
	var toks []domain.Token
	for lex.Scan() {
		toks = append(toks, lex.Token())
	}
	if err := lex.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}
