package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/modkit/internal/harness"
	"github.com/aretw0/modkit/internal/logging"
	"github.com/aretw0/modkit/internal/presentation"
	"github.com/aretw0/modkit/internal/registry"
	"github.com/aretw0/modkit/pkg/response"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Plugin       string
	Fields       []string // key=value pairs or bare positionals
	Line         string   // raw argument line; overrides Fields
	Passthrough  bool
	JSON         bool
	Debug        bool
	RegistryPath string
	Out          io.Writer
}

// ExecuteRun handles the 'run' command logic: resolve the plugin, stage
// the argument line, execute, and report the decoded response.
func ExecuteRun(opts RunOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(os.Stderr, level)

	plugins, err := registry.Load(opts.RegistryPath)
	if err != nil {
		return err
	}

	line := opts.Line
	if line == "" {
		line = BuildLine(opts.Fields)
	}
	logger.Debug("staged argument line", "line", line)

	runner := harness.NewRunner(
		harness.WithRegistry(plugins),
		harness.WithLogger(logger),
	)

	result, err := runner.Run(context.Background(), opts.Plugin, line, opts.Passthrough)
	if err != nil {
		return err
	}

	if opts.JSON {
		if result.RawJSON == "" {
			return fmt.Errorf("plugin did not emit a JSON response (exit code %d)", result.ExitCode)
		}
		fmt.Fprintln(opts.Out, result.RawJSON)
	} else {
		presentation.NewRenderer(opts.Out).Render(result)
	}

	if result.Summary == nil {
		return fmt.Errorf("plugin response was missing or malformed")
	}
	if result.Summary.Failed {
		return fmt.Errorf("plugin reported failure (rc=%d)", result.Summary.Code())
	}
	return nil
}

// BuildLine assembles an argument line from key=value pairs and bare
// positionals, quoting and escaping values that need it.
func BuildLine(fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		name, value, found := strings.Cut(field, "=")
		if !found {
			parts = append(parts, quoteValue(field))
			continue
		}
		parts = append(parts, name+"="+quoteValue(value))
	}
	return strings.Join(parts, " ")
}

func quoteValue(value string) string {
	if value == "" || strings.ContainsAny(value, " \"\\\t\n") {
		return `"` + response.Escape(value) + `"`
	}
	return value
}
