package response

import "strings"

// escaper rewrites raw text into the body of a JSON string literal.
// The backslash pair is listed first so a literal backslash is never
// confused with an escape it just produced; the remaining pairs cover
// the control characters the protocol cares about. Non-ASCII runes
// pass through untouched.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`/`, `\/`,
	"\b", `\b`,
	"\n", `\n`,
	"\t", `\t`,
	"\f", `\f`,
	"\r", `\r`,
)

// unescaper is the exact inverse of escaper. strings.Replacer scans the
// input in a single pass, so `\\n` decodes to a backslash followed by a
// literal n rather than being re-expanded into a newline.
var unescaper = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\/`, `/`,
	`\b`, "\b",
	`\n`, "\n",
	`\t`, "\t",
	`\f`, "\f",
	`\r`, "\r",
)

// Escape encodes raw text as the body of a JSON string literal, without
// the surrounding quotes. Multi-line input stays one logical value:
// newlines become \n, never physical line breaks in the output.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Unescape decodes a JSON string-literal body back into raw text.
// For any NUL-free s, Unescape(Escape(s)) == s.
func Unescape(body string) string {
	return unescaper.Replace(body)
}
