package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/aretw0/modkit/pkg/args"
	"github.com/aretw0/modkit/pkg/domain"
)

// LexOptions configures the lex command.
type LexOptions struct {
	Line string
	Out  io.Writer
}

// ExecuteLex dumps the raw token stream for an argument line.
func ExecuteLex(opts LexOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	tokens, err := args.Tokens(opts.Line)
	if err != nil {
		return err
	}

	for i, tok := range tokens {
		if tok.Positional() {
			fmt.Fprintf(opts.Out, "[%d] positional %q\n", i, tok.Value)
			continue
		}
		fmt.Fprintf(opts.Out, "[%d] %s = %q\n", i, tok.Name, tok.Value)
	}
	return nil
}

// ParseOptions configures the parse command.
type ParseOptions struct {
	Line  string
	Allow []string
	Out   io.Writer
}

// ExecuteParse runs the validator against an allow-list and prints the
// resulting bindings and positionals.
func ExecuteParse(opts ParseOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	parsed, err := args.Parse(opts.Line, domain.NewAllowList(opts.Allow...))
	if err != nil {
		return err
	}

	names := make([]string, 0, len(parsed.Bindings))
	for name := range parsed.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(opts.Out, "%s = %q\n", name, parsed.Bindings[name])
	}
	for i, value := range parsed.Positionals {
		fmt.Fprintf(opts.Out, "[%d] %q\n", i, value)
	}
	return nil
}
