/*
Package modkit lets Go programs implement plugins ("task modules") for an
orchestration tool's legacy plugin protocol: the orchestrator passes one
opaque argument line of shell-quoted key=value pairs (inline or via a file
path), and expects exactly one JSON object on stdout describing success or
failure. Any other output, and any abnormal termination, must still become
a well-formed JSON response.

# Concept

A module declares the keyword arguments it understands, and modkit takes
care of the rest: lexing and validating the argument line, capturing stray
stdout/stderr so it rides the response instead of corrupting the protocol
stream, and converting panics or propagated errors into the standard
failed:true response shape.

# Usage

	package main

	import (
		"os"

		"github.com/aretw0/modkit"
		"github.com/aretw0/modkit/pkg/response"
	)

	func main() {
		modkit.Run(modkit.Module{
			Name: "touch",
			Args: []string{"path"},
			Main: func(inv *modkit.Invocation) error {
				f, err := os.Create(inv.Arg("path"))
				if err != nil {
					return modkit.Fail(1, "create failed: %v", err)
				}
				f.Close()
				return inv.Respond(
					response.Raw("failed", "false"),
					response.String("msg", "file created"),
				)
			},
		})
	}

Invoked as "touch /path/to/argsfile" by the orchestrator, or locally as
"touch --inline 'path=/tmp/x'" for testing (capture disabled, output
passes through).

The cmd/modkit harness runs and inspects plugins locally; see its help
output for details.
*/
package modkit
