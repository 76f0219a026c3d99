package args

import (
	"fmt"

	"github.com/aretw0/modkit/pkg/domain"
	"github.com/aretw0/modkit/pkg/response"
)

// Parse lexes line and validates every token against the allow-list.
// On failure no partial result is returned: the first offending token
// aborts the pass. Values are decoded exactly once, after the lexer has
// stripped surrounding quotes.
func Parse(line string, allow domain.AllowList) (*domain.Args, error) {
	parsed := &domain.Args{Bindings: map[string]string{}}

	lex := NewLexer(line)
	for lex.Scan() {
		tok := lex.Token()
		value := response.Unescape(tok.Value)

		if tok.Positional() {
			if !allow.AcceptsPositional() {
				return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedPositional, value)
			}
			parsed.Positionals = append(parsed.Positionals, value)
			parsed.Tokens = append(parsed.Tokens, domain.Token{Value: value})
			continue
		}

		if !allow.Allows(tok.Name) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedArgument, tok.Name)
		}
		// Last writer wins on repeats; Tokens keeps every occurrence in order.
		parsed.Bindings[tok.Name] = value
		parsed.Tokens = append(parsed.Tokens, domain.Token{Name: tok.Name, Value: value})
	}
	if err := lex.Err(); err != nil {
		return nil, err
	}

	return parsed, nil
}
