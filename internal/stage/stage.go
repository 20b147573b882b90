// Package stage drives the two external assembler stages that sit between
// writing the hand-off input and reading the hand-off output.
package stage

import (
	"context"
	"errors"
	"fmt"
)

// Runner runs the external tool. Stage one consumes the hand-off input;
// stage two produces the hand-off output and reports its path.
type Runner interface {
	RunStageOne(ctx context.Context, inputPath string) error
	RunStageTwo(ctx context.Context) (outputPath string, err error)
}

// Error reports which stage failed.
type Error struct {
	Stage int
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("stage %d: %v", e.Stage, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Run executes both stages in order and returns the output path.
func Run(ctx context.Context, r Runner, inputPath string) (string, error) {
	if err := r.RunStageOne(ctx, inputPath); err != nil {
		return "", wrap(1, err)
	}
	out, err := r.RunStageTwo(ctx)
	if err != nil {
		return "", wrap(2, err)
	}
	return out, nil
}

func wrap(n int, err error) error {
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Stage: n, Err: err}
}
