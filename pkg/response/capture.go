package response

import (
	"fmt"
	"os"
)

// Capture redirects the process-global stdout and stderr into a pair of
// temporary files so business-logic output rides the JSON response as
// string fields instead of corrupting the protocol stream.
//
// The files are scoped to one invocation: created by StartCapture,
// deleted by Stop or Release on every exit path. Their names carry the
// process ID so concurrent plugin invocations never collide.
type Capture struct {
	outFile *os.File
	errFile *os.File

	origStdout *os.File
	origStderr *os.File

	done bool
}

// StartCapture creates the temporary buffers and swaps os.Stdout and
// os.Stderr to point at them.
func StartCapture() (*Capture, error) {
	pattern := fmt.Sprintf("modkit-%d-", os.Getpid())

	outFile, err := os.CreateTemp("", pattern+"stdout-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout capture: %w", err)
	}
	errFile, err := os.CreateTemp("", pattern+"stderr-*")
	if err != nil {
		outFile.Close()
		os.Remove(outFile.Name())
		return nil, fmt.Errorf("failed to create stderr capture: %w", err)
	}

	c := &Capture{
		outFile:    outFile,
		errFile:    errFile,
		origStdout: os.Stdout,
		origStderr: os.Stderr,
	}
	os.Stdout = outFile
	os.Stderr = errFile
	return c, nil
}

// Stop restores the real streams, reads back everything the business
// logic wrote, and deletes the temporary files.
func (c *Capture) Stop() (stdout, stderr string, err error) {
	if c == nil || c.done {
		return "", "", nil
	}
	c.restore()

	outData, outErr := os.ReadFile(c.outFile.Name())
	errData, errErr := os.ReadFile(c.errFile.Name())
	c.remove()

	if outErr != nil {
		return "", "", fmt.Errorf("failed to read captured stdout: %w", outErr)
	}
	if errErr != nil {
		return "", "", fmt.Errorf("failed to read captured stderr: %w", errErr)
	}
	return string(outData), string(errData), nil
}

// Release is the idempotent safety net for abnormal exit paths: restore
// the streams and delete the files without reading them. Calling it
// after Stop is a no-op.
func (c *Capture) Release() {
	if c == nil || c.done {
		return
	}
	c.restore()
	c.remove()
}

func (c *Capture) restore() {
	os.Stdout = c.origStdout
	os.Stderr = c.origStderr
}

func (c *Capture) remove() {
	c.done = true
	c.outFile.Close()
	c.errFile.Close()
	os.Remove(c.outFile.Name())
	os.Remove(c.errFile.Name())
}
