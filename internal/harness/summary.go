package harness

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Summary is the decoded plugin response, typed on the conventional
// top-level fields with everything else collected under Extra.
type Summary struct {
	Failed bool   `mapstructure:"failed"`
	RC     int    `mapstructure:"rc"`
	Status int    `mapstructure:"status"`
	Msg    string `mapstructure:"msg"`
	Stdout string `mapstructure:"stdout"`
	Stderr string `mapstructure:"stderr"`

	Extra map[string]any `mapstructure:",remain"`
}

// Code returns the effective result code: rc when set, else status.
func (s *Summary) Code() int {
	if s.RC != 0 {
		return s.RC
	}
	return s.Status
}

// DecodeSummary parses the plugin's single JSON line into a Summary.
// Numbers arrive as JSON float64, so decoding is weakly typed to land
// them in the int fields.
func DecodeSummary(raw string) (*Summary, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("plugin response is not valid JSON: %w", err)
	}

	var summary Summary
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &summary,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(obj); err != nil {
		return nil, fmt.Errorf("failed to decode plugin response: %w", err)
	}
	return &summary, nil
}
