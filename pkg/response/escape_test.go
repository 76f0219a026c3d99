package response

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello", "hello"},
		{"backslash", `a\b`, `a\\b`},
		{"double quote", `say "hi"`, `say \"hi\"`},
		{"forward slash", "/tmp/a.txt", `\/tmp\/a.txt`},
		{"newline stays one logical value", "line1\nline2", `line1\nline2`},
		{"tab", "a\tb", `a\tb`},
		{"carriage return", "a\rb", `a\rb`},
		{"form feed", "a\fb", `a\fb`},
		{"backspace", "a\bb", `a\bb`},
		{"backslash before quote", `\"`, `\\\"`},
		{"non-ascii passes through", "héllo→", "héllo→"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"escaped quote", `say \"hi\"`, `say "hi"`},
		{"escaped backslash", `a\\b`, `a\b`},
		{"escaped newline", `a\nb`, "a\nb"},
		// Single pass: the backslash produced by \\ must not combine
		// with the following n into a newline.
		{"no double unescape", `a\\nb`, `a\nb`},
		{"escaped slash", `\/etc\/hosts`, "/etc/hosts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unescape(tt.in); got != tt.want {
				t.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`back\slash`,
		`"quoted"`,
		"multi\nline\ttext\r\n",
		`mixed \" and \\ sequences`,
		"/path/with/slashes",
		"\b\f\r\n\t",
		`trailing backslash \`,
		"unicode: héllo wörld 🚀",
	}

	for _, s := range inputs {
		if got := Unescape(Escape(s)); got != s {
			t.Errorf("round trip failed for %q: got %q", s, got)
		}
	}
}
