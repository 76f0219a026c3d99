package modkit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aretw0/modkit/internal/logging"
	"github.com/aretw0/modkit/pkg/args"
	"github.com/aretw0/modkit/pkg/domain"
	"github.com/aretw0/modkit/pkg/response"
)

// Positional is the reserved allow-list entry that declares the module
// accepts bare (positional) arguments.
const Positional = domain.PositionalMarker

// EnvDebug enables debug-level logging when set. The log output rides
// the captured stderr, so it surfaces as the response's stderr field
// rather than corrupting the protocol stream.
const EnvDebug = "MODKIT_DEBUG"

// Module declares a plugin: the keyword names it understands (plus the
// Positional marker when bare arguments are allowed) and its body.
type Module struct {
	Name string
	Args []string
	Main func(*Invocation) error
}

// Invocation is the per-invocation context handed to the module body:
// the validated arguments, the response variable set, the logger, and
// the one-shot response emitter.
type Invocation struct {
	args    *domain.Args
	vars    response.Vars
	emitter *response.Emitter
	logger  *slog.Logger
}

// Args returns the validated argument set.
func (inv *Invocation) Args() *domain.Args {
	return inv.args
}

// Arg returns the bound value for name, or "" when the line did not set it.
func (inv *Invocation) Arg(name string) string {
	return inv.args.Get(name)
}

// Positionals returns the decoded bare arguments in line order.
func (inv *Invocation) Positionals() []string {
	return inv.args.Positionals
}

// Set binds a response variable, resolvable via response.Var fields.
func (inv *Invocation) Set(name, value string) {
	inv.vars[name] = value
}

// Var returns the current value of a response variable, "" when unset.
func (inv *Invocation) Var(name string) string {
	return inv.vars[name]
}

// Logger returns the invocation logger.
func (inv *Invocation) Logger() *slog.Logger {
	return inv.logger
}

// Respond emits the single JSON response for this invocation.
func (inv *Invocation) Respond(fields ...response.Field) error {
	return inv.emitter.Emit(fields...)
}

// RespondSpec emits the response from compact field specs:
// name="text" (string), name:literal (raw JSON), name (variable ref).
func (inv *Invocation) RespondSpec(specs ...string) error {
	fields := make([]response.Field, len(specs))
	for i, spec := range specs {
		fields[i] = response.ParseField(spec)
	}
	return inv.emitter.Emit(fields...)
}

// ExitError carries the rc a module body wants the automatic failure
// response to report.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string {
	return e.Msg
}

// Fail builds an ExitError so business logic can pick the response rc:
//
//	return modkit.Fail(2, "path %s does not exist", path)
func Fail(code int, format string, a ...any) error {
	return &ExitError{Code: code, Msg: fmt.Sprintf(format, a...)}
}

// Run is the process entry point for a plugin. It never returns.
func Run(m Module) {
	os.Exit(run(m, os.Args[1:], os.Stdout, os.Stderr))
}

// run drives one invocation: resolve the argument line, validate it,
// start output capture (file form only), execute the module body inside
// the guarded region, and guarantee exactly one JSON object on stdout.
//
// Exit code 0 covers every emitted response, failures included; 2 is
// reserved for the pre-response aborts (malformed argument line, or a
// response write that physically failed).
func run(m Module, argv []string, stdout, stderr io.Writer) int {
	vars := response.Vars{}

	line, captured, srcErr := argumentLine(argv)
	if srcErr != nil {
		em := response.NewEmitter(stdout, vars)
		if err := em.EmitFailure(srcErr.Error(), 1, "", ""); err != nil {
			return 2
		}
		return 0
	}

	parsed, parseErr := args.Parse(line, domain.NewAllowList(m.Args...))
	if parseErr != nil {
		if errors.Is(parseErr, domain.ErrMalformedLine) {
			// No response machinery is available this early; report on
			// the real stderr and abort.
			fmt.Fprintf(stderr, "%s: %v\n", m.Name, parseErr)
			return 2
		}
		em := response.NewEmitter(stdout, vars)
		if err := em.EmitFailure(parseErr.Error(), 1, "", ""); err != nil {
			return 2
		}
		return 0
	}

	var opts []response.EmitterOption
	var capture *response.Capture
	if captured {
		var err error
		capture, err = response.StartCapture()
		if err != nil {
			em := response.NewEmitter(stdout, vars)
			if emitErr := em.EmitFailure(err.Error(), 1, "", ""); emitErr != nil {
				return 2
			}
			return 0
		}
		defer capture.Release()
		opts = append(opts, response.WithCapture(capture))
	}

	level := slog.LevelInfo
	if os.Getenv(EnvDebug) != "" {
		level = slog.LevelDebug
	}
	logger := logging.NewStderr(level).With("module", m.Name)

	emitter := response.NewEmitter(stdout, vars, opts...)
	inv := &Invocation{
		args:    parsed,
		vars:    vars,
		emitter: emitter,
		logger:  logger,
	}

	mainErr := runGuarded(m, inv)

	switch {
	case mainErr != nil:
		reason := "module failed"
		code := 1
		location := ""
		operation := mainErr.Error()

		var pErr *panicError
		var xErr *ExitError
		var eErr *exec.ExitError
		switch {
		case errors.As(mainErr, &pErr):
			reason = "module panicked"
			operation = pErr.text
			location = pErr.location
		case errors.As(mainErr, &xErr):
			code = xErr.Code
		case errors.As(mainErr, &eErr):
			// A tolerated sub-process failure the module chose to propagate.
			code = eErr.ExitCode()
		}

		if err := emitter.EmitFailure(reason, code, location, operation); err != nil {
			if errors.Is(err, response.ErrAlreadyEmitted) {
				// The module responded before failing; the response stands.
				return 0
			}
			return 2
		}
	case !emitter.Emitted():
		if err := emitter.EmitFailure("module completed without emitting a response", 1, "", ""); err != nil {
			return 2
		}
	}
	return 0
}

// argumentLine resolves the invocation surface: a file path carrying the
// line (capture active), or --inline '<line>' for local testing (output
// passes through).
func argumentLine(argv []string) (line string, captured bool, err error) {
	switch {
	case len(argv) == 0:
		return "", false, fmt.Errorf("%w: expected an arguments file path", domain.ErrInvalidInvocation)

	case argv[0] == "--inline":
		if len(argv) != 2 {
			return "", false, fmt.Errorf("%w: --inline requires exactly one argument line", domain.ErrInvalidInvocation)
		}
		return argv[1], false, nil

	case strings.HasPrefix(argv[0], "--inline="):
		if len(argv) != 1 {
			return "", false, fmt.Errorf("%w: unexpected arguments after --inline", domain.ErrInvalidInvocation)
		}
		return strings.TrimPrefix(argv[0], "--inline="), false, nil

	case strings.HasPrefix(argv[0], "-"):
		return "", false, fmt.Errorf("%w: unrecognized option %s", domain.ErrInvalidInvocation, argv[0])

	case len(argv) > 1:
		return "", false, fmt.Errorf("%w: unexpected extra arguments", domain.ErrInvalidInvocation)
	}

	data, readErr := os.ReadFile(argv[0])
	if readErr != nil {
		return "", false, fmt.Errorf("%w: cannot read arguments file: %v", domain.ErrInvalidInvocation, readErr)
	}
	return strings.TrimRight(string(data), "\r\n"), true, nil
}

// panicError is the internal carrier for a recovered panic.
type panicError struct {
	text     string
	location string
}

func (e *panicError) Error() string {
	return e.text
}

// runGuarded is the single top-level guarded region: any panic escaping
// the module body is converted into an error for the automatic failure
// response instead of crashing the protocol stream.
func runGuarded(m Module, inv *Invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{
				text:     fmt.Sprintf("%v", r),
				location: panicSite(),
			}
		}
	}()
	return m.Main(inv)
}

// panicSite walks the stack from inside the recover and returns the
// first frame that belongs to neither the runtime nor this package, as
// file.go:line.
func panicSite() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fn := frame.Function
		internal := strings.HasPrefix(fn, "runtime.") ||
			strings.HasPrefix(fn, "github.com/aretw0/modkit.")
		if !internal && frame.File != "" {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}
