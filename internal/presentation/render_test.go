package presentation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/modkit/internal/harness"
)

func TestRender_Success(t *testing.T) {
	buf := &bytes.Buffer{}
	NewRenderer(buf).Render(&harness.Result{
		Summary: &harness.Summary{
			Failed: false,
			Msg:    "File altered",
			Stdout: "build ok\n",
			Extra:  map[string]any{"size": float64(42)},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "File altered")
	assert.Contains(t, out, "build ok")
	assert.Contains(t, out, "size: 42")
	// Buffers are not terminals, so no escape sequences.
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_Failure(t *testing.T) {
	buf := &bytes.Buffer{}
	NewRenderer(buf).Render(&harness.Result{
		Summary: &harness.Summary{Failed: true, RC: 3, Msg: "bad state"},
	})

	out := buf.String()
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "rc=3")
	assert.Contains(t, out, "bad state")
}

func TestRender_Malformed(t *testing.T) {
	buf := &bytes.Buffer{}
	NewRenderer(buf).Render(&harness.Result{
		Stdout: "garbage output",
		Stderr: "trace",
	})

	out := buf.String()
	assert.Contains(t, out, "MALFORMED")
	assert.Contains(t, out, "garbage output")
	assert.Contains(t, out, "trace")
}
