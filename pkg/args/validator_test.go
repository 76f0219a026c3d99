package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/modkit/pkg/domain"
)

func TestParse_NamedBindings(t *testing.T) {
	allow := domain.NewAllowList("file", "mode", "owner")

	parsed, err := Parse(`file=/tmp/a.txt mode=0644 owner="jane doe"`, allow)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"file":  "/tmp/a.txt",
		"mode":  "0644",
		"owner": "jane doe",
	}, parsed.Bindings)
	assert.Empty(t, parsed.Positionals)
}

func TestParse_Positionals(t *testing.T) {
	allow := domain.NewAllowList(domain.PositionalMarker)

	parsed, err := Parse("a b c", allow)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, parsed.Positionals)
	assert.Empty(t, parsed.Bindings)
}

func TestParse_UnsupportedArgument(t *testing.T) {
	allow := domain.NewAllowList("baz")

	parsed, err := Parse("foo=bar", allow)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedArgument)
	assert.Contains(t, err.Error(), "foo")
	assert.Nil(t, parsed, "no partial result on failure")
}

func TestParse_UnsupportedPositional(t *testing.T) {
	allow := domain.NewAllowList("file")

	parsed, err := Parse("file=/tmp/a bare", allow)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedPositional)
	assert.Nil(t, parsed)
}

func TestParse_ValuesDecodedOnce(t *testing.T) {
	allow := domain.NewAllowList("msg")

	parsed, err := Parse(`msg="say \"hi\""`, allow)
	require.NoError(t, err)
	assert.Equal(t, `say "hi"`, parsed.Bindings["msg"])
}

func TestParse_LastWriterWins(t *testing.T) {
	allow := domain.NewAllowList("x")

	parsed, err := Parse("x=1 x=2", allow)
	require.NoError(t, err)

	assert.Equal(t, "2", parsed.Bindings["x"])
	// Both occurrences stay on record in lexing order.
	require.Len(t, parsed.Tokens, 2)
	assert.Equal(t, "1", parsed.Tokens[0].Value)
	assert.Equal(t, "2", parsed.Tokens[1].Value)
}

func TestParse_TokenOrderPreserved(t *testing.T) {
	allow := domain.NewAllowList("name", "state", domain.PositionalMarker)

	parsed, err := Parse("install name=vim state=present extras", allow)
	require.NoError(t, err)

	require.Len(t, parsed.Tokens, 4)
	assert.Equal(t, "install", parsed.Tokens[0].Value)
	assert.Equal(t, "name", parsed.Tokens[1].Name)
	assert.Equal(t, "state", parsed.Tokens[2].Name)
	assert.Equal(t, "extras", parsed.Tokens[3].Value)
	assert.Equal(t, []string{"install", "extras"}, parsed.Positionals)
}

func TestParse_MalformedLine(t *testing.T) {
	allow := domain.NewAllowList("a")

	parsed, err := Parse(`a="unterminated`, allow)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedLine)
	assert.Nil(t, parsed)
}

func TestParse_EmptyLine(t *testing.T) {
	parsed, err := Parse("", domain.NewAllowList("a"))
	require.NoError(t, err)
	assert.Empty(t, parsed.Bindings)
	assert.Empty(t, parsed.Positionals)
}
