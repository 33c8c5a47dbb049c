// Package execution runs the Move build-and-test tool against a single
// translated package and reports the raw outcome.
package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrTimeout marks an invocation killed by its deadline.
var ErrTimeout = errors.New("tool invocation timed out")

// Invocation is the raw outcome of one tool run, before any extraction
// or scoring.
type Invocation struct {
	// Output is the combined stdout and stderr of the tool.
	Output string

	// ExitOK reports whether the tool exited with status zero.
	ExitOK bool

	Duration time.Duration
}

// Engine abstracts the tool invocation so orchestration can be tested
// without a Move toolchain installed.
type Engine interface {
	// Run invokes the tool in dir. A nonzero exit status is not an
	// error here; it comes back as ExitOK=false with whatever output
	// the tool produced. Run returns an error only when the tool could
	// not be invoked or was cut off: ErrTimeout for deadline kills,
	// other errors for invocation failures.
	Run(ctx context.Context, dir string) (Invocation, error)
}

// MoveEngine runs `sui move test` via the local Sui CLI.
type MoveEngine struct {
	// Binary defaults to "sui" when empty.
	Binary string
	// Timeout bounds each invocation.
	Timeout time.Duration
}

// NewMoveEngine returns a MoveEngine with the given per-invocation
// timeout.
func NewMoveEngine(timeout time.Duration) *MoveEngine {
	return &MoveEngine{Binary: "sui", Timeout: timeout}
}

func (e *MoveEngine) Run(ctx context.Context, dir string) (Invocation, error) {
	binary := e.Binary
	if binary == "" {
		binary = "sui"
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, binary, "move", "test")
	cmd.Dir = dir

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	start := time.Now()
	err := cmd.Run()
	inv := Invocation{
		Output:   combined.String(),
		Duration: time.Since(start),
	}

	if err == nil {
		inv.ExitOK = true
		return inv, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return inv, fmt.Errorf("%w after %s in %s", ErrTimeout, inv.Duration.Round(time.Millisecond), dir)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The tool ran and reported failure; the output carries the
		// compiler diagnostics.
		return inv, nil
	}

	return inv, fmt.Errorf("invoking %s in %s: %w", binary, dir, err)
}
