// Package presentation renders harness results for humans.
package presentation

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/modkit/internal/harness"
)

// Renderer writes a styled verdict for a plugin run. Color is gated on
// the writer being a real terminal.
type Renderer struct {
	w       io.Writer
	profile termenv.Profile
}

// NewRenderer creates a renderer for w.
func NewRenderer(w io.Writer) *Renderer {
	profile := termenv.Ascii
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile = termenv.ColorProfile()
	}
	return &Renderer{w: w, profile: profile}
}

// Render prints the verdict line, the message, attached output buffers,
// and any extra response fields.
func (r *Renderer) Render(res *harness.Result) {
	s := res.Summary
	if s == nil {
		fmt.Fprintln(r.w, r.paint("MALFORMED", "#f87171"), "plugin did not emit a JSON response")
		if out := strings.TrimSpace(res.Stdout); out != "" {
			r.section("stdout", out)
		}
		if errOut := strings.TrimSpace(res.Stderr); errOut != "" {
			r.section("stderr", errOut)
		}
		return
	}

	if s.Failed {
		fmt.Fprintln(r.w, r.paint("FAILED", "#f87171"), fmt.Sprintf("rc=%d", s.Code()))
	} else {
		fmt.Fprintln(r.w, r.paint("OK", "#34d399"), fmt.Sprintf("rc=%d", s.Code()))
	}
	if s.Msg != "" {
		fmt.Fprintf(r.w, "  msg: %s\n", s.Msg)
	}
	if s.Stdout != "" {
		r.section("captured stdout", strings.TrimRight(s.Stdout, "\n"))
	}
	if s.Stderr != "" {
		r.section("captured stderr", strings.TrimRight(s.Stderr, "\n"))
	}

	if len(s.Extra) > 0 {
		keys := make([]string, 0, len(s.Extra))
		for k := range s.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(r.w, "  %s: %v\n", k, s.Extra[k])
		}
	}
}

func (r *Renderer) paint(text, hex string) string {
	return r.profile.String(text).Foreground(r.profile.Color(hex)).Bold().String()
}

func (r *Renderer) section(title, body string) {
	fmt.Fprintf(r.w, "  %s:\n", r.paint(title, "#818cf8"))
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(r.w, "    %s\n", line)
	}
}
