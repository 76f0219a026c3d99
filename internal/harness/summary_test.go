package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSummary(t *testing.T) {
	// JSON numbers decode as float64; the summary must still land them
	// in the int fields.
	raw := `{"failed": true, "rc": 3, "msg": "bad state", "stdout": "partial\n", "extra_field": "x"}`

	s, err := DecodeSummary(raw)
	require.NoError(t, err)

	assert.True(t, s.Failed)
	assert.Equal(t, 3, s.RC)
	assert.Equal(t, "bad state", s.Msg)
	assert.Equal(t, "partial\n", s.Stdout)
	assert.Equal(t, "x", s.Extra["extra_field"])
}

func TestDecodeSummary_StatusFallback(t *testing.T) {
	s, err := DecodeSummary(`{"failed": false, "status": 2}`)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Code())

	s, err = DecodeSummary(`{"failed": false, "rc": 1, "status": 2}`)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Code(), "rc wins over status")
}

func TestDecodeSummary_Invalid(t *testing.T) {
	_, err := DecodeSummary("not json at all")
	assert.Error(t, err)
}
