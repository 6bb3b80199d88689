// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"shoal-cli/pkg/value"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// External is the output of an external command: a raw byte source plus
// the command's exit status, available once the source is drained. Its
// bytes are undifferentiated until a consumer materializes or parses
// them, so Map treats the whole output as a single value.
type External struct {
	stdout io.Reader
	result <-chan externalResult
	waited bool
	res    externalResult
}

type externalResult struct {
	exitCode int
	err      error
}

// ExternalOptions configures how an external command is run.
type ExternalOptions struct {
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env is the environment in KEY=VALUE form; nil inherits the process
	// environment.
	Env []string
	// Stderr receives the command's stderr; nil discards it.
	Stderr io.Writer
}

// RunExternal executes a shell script with the embedded interpreter and
// returns its output as it is produced. A script that fails to parse is a
// configuration-level error reported before any output exists; runtime
// failures surface later, when the output is materialized.
func RunExternal(ctx context.Context, script string, opts ExternalOptions) (*External, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return nil, fmt.Errorf("script syntax error: %w", err)
	}

	pr, pw := io.Pipe()
	stderr := opts.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	runnerOpts := []interp.RunnerOption{
		interp.StdIO(nil, pw, stderr),
	}
	if opts.Dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(opts.Dir))
	}
	if opts.Env != nil {
		runnerOpts = append(runnerOpts, interp.Env(expand.ListEnviron(opts.Env...)))
	}

	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	result := make(chan externalResult, 1)
	go func() {
		runErr := runner.Run(ctx, prog)
		res := externalResult{}
		if runErr != nil {
			var exitStatus interp.ExitStatus
			if errors.As(runErr, &exitStatus) {
				res.exitCode = int(exitStatus)
			} else {
				res.err = runErr
			}
		}
		slog.Debug("external script finished", "exitCode", res.exitCode, "error", res.err)
		_ = pw.Close()
		result <- res
	}()

	return &External{stdout: pr, result: result}, nil
}

// NewExternalFromReader wraps an already-produced byte source and exit
// status as external output. Used by tests and by callers that capture
// output themselves.
func NewExternalFromReader(r io.Reader, exitCode int) *External {
	result := make(chan externalResult, 1)
	result <- externalResult{exitCode: exitCode}
	return &External{stdout: r, result: result}
}

// Reader exposes the raw byte source for consumers that want to parse the
// output themselves instead of materializing it.
func (e *External) Reader() io.Reader {
	return e.stdout
}

// IntoValue drains the output and folds in the exit status: a clean exit
// yields the captured text (one trailing newline trimmed) as a string
// value; a non-zero exit or an infrastructure failure yields an error
// value.
func (e *External) IntoValue(span value.Span) value.Value {
	data, readErr := io.ReadAll(e.stdout)
	res := e.wait()

	if res.err != nil {
		return value.NewError(&value.Error{
			Message: fmt.Sprintf("external command failed: %v", res.err),
			Span:    span,
		})
	}
	if readErr != nil {
		return value.NewError(&value.Error{
			Message: fmt.Sprintf("failed to read external output: %v", readErr),
			Span:    span,
		})
	}
	if res.exitCode != 0 {
		return value.NewError(&value.Error{
			Message: fmt.Sprintf("external command exited with code %d", res.exitCode),
			Span:    span,
		})
	}
	return value.NewString(strings.TrimSuffix(string(data), "\n"), span)
}

// ExitCode blocks until the command finishes and returns its exit status.
// Call only after the output has been drained.
func (e *External) ExitCode() (int, error) {
	res := e.wait()
	return res.exitCode, res.err
}

// wait receives the command result once and caches it so that IntoValue
// and ExitCode can both observe it regardless of call order.
func (e *External) wait() externalResult {
	if !e.waited {
		e.res = <-e.result
		e.waited = true
	}
	return e.res
}
