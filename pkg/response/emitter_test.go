package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_Emit(t *testing.T) {
	buf := &bytes.Buffer{}
	em := NewEmitter(buf, Vars{"string1": "hello"})

	err := em.Emit(
		Raw("failed", "false"),
		String("msg", "File altered"),
		Var("string1"),
	)
	require.NoError(t, err)

	assert.Equal(t, `{"failed": false, "msg": "File altered", "string1": "hello"}`+"\n", buf.String())
	assert.True(t, em.Emitted())
}

func TestEmitter_OneShot(t *testing.T) {
	buf := &bytes.Buffer{}
	em := NewEmitter(buf, nil)

	require.NoError(t, em.Emit(Raw("failed", "false")))
	err := em.Emit(Raw("failed", "true"))
	assert.ErrorIs(t, err, ErrAlreadyEmitted)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "exactly one JSON object per invocation")
}

func TestEmitter_EmitFailure(t *testing.T) {
	buf := &bytes.Buffer{}
	em := NewEmitter(buf, nil)

	require.NoError(t, em.EmitFailure("module panicked", 1, "main.go:42", "index out of range"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, true, decoded["failed"])
	assert.Equal(t, float64(1), decoded["rc"])
	msg := decoded["msg"].(string)
	assert.Contains(t, msg, "module panicked")
	assert.Contains(t, msg, "index out of range")
	assert.Contains(t, msg, "main.go:42")
}

func TestEmitter_EmitFailureMinimalShape(t *testing.T) {
	buf := &bytes.Buffer{}
	em := NewEmitter(buf, nil)

	require.NoError(t, em.EmitFailure("unsupported argument: foo", 1, "", ""))
	assert.Equal(t, `{"failed": true, "rc": 1, "msg": "unsupported argument: foo"}`+"\n", buf.String())
}

func TestEmitter_CaptureAttachment(t *testing.T) {
	capture, err := StartCapture()
	require.NoError(t, err)
	defer capture.Release()

	fmt.Println("side channel out")
	fmt.Fprintln(os.Stderr, "side channel err")

	buf := &bytes.Buffer{}
	em := NewEmitter(buf, Vars{}, WithCapture(capture))
	require.NoError(t, em.Emit(Raw("failed", "false")))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "side channel out\n", decoded["stdout"])
	assert.Equal(t, "side channel err\n", decoded["stderr"])
}

func TestEmitter_EmptyBuffersAddNothing(t *testing.T) {
	capture, err := StartCapture()
	require.NoError(t, err)
	defer capture.Release()

	buf := &bytes.Buffer{}
	em := NewEmitter(buf, Vars{}, WithCapture(capture))
	require.NoError(t, em.Emit(Raw("failed", "false")))

	assert.Equal(t, `{"failed": false}`+"\n", buf.String())
}
