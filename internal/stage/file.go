package stage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"misclass/internal/logging"
)

const defaultPollInterval = 2 * time.Second

// FileRunner treats the assembler as an operator-driven process: stage one
// checks the hand-off input is in place, stage two waits for the assembler
// to drop the hand-off output next to it.
type FileRunner struct {
	OutputPath   string
	Timeout      time.Duration // 0 waits until ctx is done
	PollInterval time.Duration
	Logger       *zap.Logger
}

// RunStageOne checks inputPath and clears any stale output so stage two
// only accepts a result produced for this input.
func (f *FileRunner) RunStageOne(ctx context.Context, inputPath string) error {
	if err := ctx.Err(); err != nil {
		return &Error{Stage: 1, Err: err}
	}
	fi, err := os.Stat(inputPath)
	if err != nil {
		return &Error{Stage: 1, Err: fmt.Errorf("hand-off input: %w", err)}
	}
	if fi.IsDir() {
		return &Error{Stage: 1, Err: fmt.Errorf("hand-off input %s is a directory", inputPath)}
	}
	if err := os.Remove(f.OutputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &Error{Stage: 1, Err: fmt.Errorf("remove stale output: %w", err)}
	}
	logging.OrNop(f.Logger).Info("hand-off input ready; run distance estimation on it",
		zap.String("input", inputPath),
		zap.String("expect_output", f.OutputPath))
	return nil
}

// RunStageTwo blocks until OutputPath exists, is non-empty and has stopped
// growing, then returns it.
func (f *FileRunner) RunStageTwo(ctx context.Context) (string, error) {
	log := logging.OrNop(f.Logger)
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	poll := f.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}

	var events <-chan fsnotify.Event
	var errs <-chan error
	w, err := fsnotify.NewWatcher()
	if err == nil {
		if err = w.Add(filepath.Dir(f.OutputPath)); err != nil {
			_ = w.Close()
		}
	}
	if err != nil {
		log.Debug("fsnotify unavailable, polling", zap.Error(err))
	} else {
		defer w.Close()
		events, errs = w.Events, w.Errors
	}

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	lastSize := int64(-1)
	check := func() bool {
		fi, err := os.Stat(f.OutputPath)
		if err != nil || fi.IsDir() || fi.Size() == 0 {
			lastSize = -1
			return false
		}
		settled := fi.Size() == lastSize
		lastSize = fi.Size()
		return settled
	}

	arrived := func() (string, error) {
		log.Info("hand-off output arrived", zap.String("path", f.OutputPath), zap.Int64("bytes", lastSize))
		return f.OutputPath, nil
	}

	log.Info("waiting for hand-off output", zap.String("path", f.OutputPath))
	for {
		select {
		case <-ctx.Done():
			return "", &Error{Stage: 2, Err: fmt.Errorf("waiting for %s: %w", f.OutputPath, ctx.Err())}
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) != filepath.Clean(f.OutputPath) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				log.Debug("output event", zap.String("op", ev.Op.String()))
				if check() {
					return arrived()
				}
			}
		case werr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("watcher error", zap.Error(werr))
		case <-ticker.C:
			if check() {
				return arrived()
			}
		}
	}
}
