package response

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tevino/abool/v2"
)

// ErrAlreadyEmitted is returned when a second response emission is
// attempted within one invocation.
var ErrAlreadyEmitted = errors.New("response already emitted")

// Emitter owns the real output channel for one invocation and guarantees
// exactly one JSON object reaches it, no matter how many times business
// logic attempted to write elsewhere.
type Emitter struct {
	out     io.Writer
	vars    Vars
	capture *Capture
	emitted *abool.AtomicBool
}

// EmitterOption configures the emitter.
type EmitterOption func(*Emitter)

// WithCapture attaches an active capture session. On emission the session
// is finalized and each non-empty buffer becomes a stdout/stderr string
// field on the response.
func WithCapture(c *Capture) EmitterOption {
	return func(e *Emitter) {
		e.capture = c
	}
}

// NewEmitter builds an emitter writing to out and resolving Var fields
// against vars. A nil vars is treated as empty.
func NewEmitter(out io.Writer, vars Vars, opts ...EmitterOption) *Emitter {
	e := &Emitter{
		out:     out,
		vars:    vars,
		emitted: abool.New(),
	}
	if e.vars == nil {
		e.vars = Vars{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emitted reports whether the response has already been written.
func (e *Emitter) Emitted() bool {
	return e.emitted.IsSet()
}

// Emit finalizes the capture session, formats the single response object
// and writes it as one newline-terminated line. A second call returns
// ErrAlreadyEmitted and writes nothing.
func (e *Emitter) Emit(fields ...Field) error {
	// Atomic test-and-set: even racing callers produce exactly one object.
	if !e.emitted.SetToIf(false, true) {
		return ErrAlreadyEmitted
	}

	var extra []string
	if e.capture != nil {
		stdout, stderr, err := e.capture.Stop()
		if err != nil {
			return err
		}
		if stdout != "" {
			e.vars["stdout"] = stdout
			extra = append(extra, "stdout")
		}
		if stderr != "" {
			e.vars["stderr"] = stderr
			extra = append(extra, "stderr")
		}
	}

	if _, err := fmt.Fprintln(e.out, FormatObject(fields, extra, e.vars)); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// EmitFailure writes the automatic failure response: failed:true, the
// exit code under rc, and a human-readable msg carrying the source
// location and failing operation when known. It is safe to call after
// business logic already wrote to the captured streams.
func (e *Emitter) EmitFailure(reason string, code int, location, operation string) error {
	var msg strings.Builder
	msg.WriteString(reason)
	if operation != "" {
		msg.WriteString(": ")
		msg.WriteString(operation)
	}
	if location != "" {
		msg.WriteString(" (at ")
		msg.WriteString(location)
		msg.WriteString(")")
	}

	return e.Emit(
		Raw("failed", "true"),
		Raw("rc", strconv.Itoa(code)),
		String("msg", msg.String()),
	)
}
