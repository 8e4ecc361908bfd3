// Package ldconsole runs LDPlayer's ldconsole executable and decodes its output.
package ldconsole

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding"
)

// execCommandContext is swapped in tests to run a helper process instead of ldconsole.
var execCommandContext = exec.CommandContext

// Executor implements ports.Console by spawning one ldconsole process per call.
type Executor struct {
	console      string
	encodingName string
	encoding     encoding.Encoding
	logger       ports.Logger
}

var _ ports.Console = (*Executor)(nil)

// NewExecutor creates an executor for the console at path whose output is written in the
// named code page. An unknown encoding is rejected with domain.ErrUnknownEncoding.
func NewExecutor(path, encodingName string, logger ports.Logger) (*Executor, error) {
	enc, err := ResolveEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &Executor{
		console:      path,
		encodingName: encodingName,
		encoding:     enc,
		logger:       logger,
	}, nil
}

// Path returns the executable this executor invokes.
func (e *Executor) Path() string {
	return e.console
}

// Invoke validates req, runs the operation and shapes its output.
func (e *Executor) Invoke(ctx context.Context, operation string, req domain.Request) (domain.Result, error) {
	op, err := domain.LookupOperation(operation)
	if err != nil {
		return domain.Result{}, err
	}
	args, err := op.BuildArgs(req)
	if err != nil {
		return domain.Result{}, err
	}

	out, err := e.run(ctx, op.Name, args)
	if err != nil {
		return domain.Result{}, err
	}
	return shape(op, out)
}

// Ping runs the console without arguments and requires a zero exit status.
func (e *Executor) Ping(ctx context.Context) error {
	_, err := e.run(ctx, "", nil)
	return err
}

// run spawns the console and returns its decoded standard output.
func (e *Executor) run(ctx context.Context, operation string, args []string) (string, error) {
	cmd := execCommandContext(ctx, e.console, args...) //nolint:gosec // console path is user configuration
	configure(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", zerr.With(zerr.Wrap(ctxErr, "ldconsole invocation interrupted"), "operation", operation)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			err := zerr.With(zerr.Wrap(domain.ErrConsoleUnavailable, runErr.Error()), "path", e.console)
			return "", zerr.With(err, "operation", operation)
		}

		// Diagnostics are attached even when they do not decode cleanly.
		out, _ := e.decode(stdout.Bytes())
		errOut, _ := e.decode(stderr.Bytes())
		err := zerr.With(zerr.Wrap(domain.ErrCommandFailed, runErr.Error()), "exit_code", exitErr.ExitCode())
		err = zerr.With(err, "operation", operation)
		err = zerr.With(err, "output", strings.TrimSpace(out))
		return "", zerr.With(err, "stderr", strings.TrimSpace(errOut))
	}

	out, err := e.decode(stdout.Bytes())
	if err != nil {
		return "", zerr.With(err, "operation", operation)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" && e.logger != nil {
		if decoded, decErr := e.decode(stderr.Bytes()); decErr == nil {
			msg = strings.TrimSpace(decoded)
		}
		e.logger.Warn("ldconsole " + operation + ": " + msg)
	}
	return out, nil
}

func (e *Executor) decode(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	decoded, err := e.encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrDecodeFailed, err.Error()), "encoding", e.encodingName)
	}
	return string(decoded), nil
}

// shape converts decoded output into the operation's result shape.
func shape(op domain.Operation, out string) (domain.Result, error) {
	res := domain.Result{Operation: op.Name, Output: out}

	switch op.Result {
	case domain.ShapeText:
		res.Text = strings.TrimSpace(out)
	case domain.ShapeLines:
		res.Lines = splitLines(out)
	case domain.ShapeInstances:
		instances, err := domain.ParseInstances(out)
		if err != nil {
			err = zerr.With(err, "operation", op.Name)
			return domain.Result{}, zerr.With(err, "output", out)
		}
		res.Instances = instances
	case domain.ShapeNone:
	}
	return res, nil
}

func splitLines(out string) []string {
	var lines []string
	for line := range strings.Lines(out) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
