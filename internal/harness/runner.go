// Package harness runs plugin binaries locally the way the orchestrator
// would: argument line in via temp file (or --inline), one JSON line out.
package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/aretw0/modkit/internal/logging"
	"github.com/aretw0/modkit/internal/registry"
)

// Result captures one plugin execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Summary  *Summary
	RawJSON  string
}

// Runner resolves plugin names against a registry and executes them.
// Unregistered names are also accepted as direct paths to a binary.
type Runner struct {
	registry map[string]registry.Plugin
	logger   *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithRegistry populates the plugin lookup table from a loaded registry.
func WithRegistry(plugins map[string]registry.Plugin) RunnerOption {
	return func(r *Runner) {
		for name, p := range plugins {
			r.registry[name] = p
		}
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a plugin runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[string]registry.Plugin),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps a plugin name to its command. Registry entries win;
// otherwise the name must point at an existing file.
func (r *Runner) Resolve(name string) (command string, extraArgs []string, err error) {
	if p, ok := r.registry[name]; ok {
		return p.Command, p.Args, nil
	}
	if _, statErr := os.Stat(name); statErr == nil {
		return name, nil, nil
	}
	return "", nil, fmt.Errorf("plugin not registered and not a file: %s", name)
}

// Run executes the plugin with the given argument line. In file mode the
// line is written to a temp file and the plugin receives its path; with
// passthrough the line travels via --inline and the plugin skips capture.
func (r *Runner) Run(ctx context.Context, plugin, line string, passthrough bool) (*Result, error) {
	command, extraArgs, err := r.Resolve(plugin)
	if err != nil {
		return nil, err
	}

	argv := append([]string{}, extraArgs...)
	if passthrough {
		argv = append(argv, "--inline", line)
	} else {
		argsFile, err := os.CreateTemp("", "modkit-harness-*")
		if err != nil {
			return nil, fmt.Errorf("failed to stage arguments file: %w", err)
		}
		defer os.Remove(argsFile.Name())
		if _, err := argsFile.WriteString(line + "\n"); err != nil {
			argsFile.Close()
			return nil, fmt.Errorf("failed to write arguments file: %w", err)
		}
		argsFile.Close()
		argv = append(argv, argsFile.Name())
	}

	r.logger.Debug("executing plugin", "command", command, "argv", argv)

	cmd := exec.CommandContext(ctx, command, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("failed to execute plugin: %w", runErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	// A well-behaved plugin emits exactly one JSON object on stdout,
	// even when it failed. Anything else is a protocol violation the
	// caller needs to see.
	trimmed := strings.TrimSpace(result.Stdout)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		if summary, decErr := DecodeSummary(trimmed); decErr == nil {
			result.RawJSON = trimmed
			result.Summary = summary
		}
	}

	return result, nil
}
