// Package appcore executes the misclass commands once flags and config are
// settled. It knows nothing about cobra.
package appcore

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"misclass/internal/cliutil"
	"misclass/internal/config"
	"misclass/internal/logging"
	"misclass/internal/pipeline"
	"misclass/internal/protocol"
	"misclass/internal/stage"
)

// Env is everything a command needs besides its positionals.
type Env struct {
	Config       *config.Config
	Logger       *zap.Logger
	Stdout       io.Writer
	Sort         bool
	CheckContigs bool

	// Runner overrides the file-based stage runner used by Run.
	Runner stage.Runner
}

func (e Env) pipelineConfig(reportPath string, in cliutil.Inputs) (pipeline.Config, error) {
	d, err := protocol.ParseDialect(e.Config.Handoff.Dialect)
	if err != nil {
		return pipeline.Config{}, err
	}
	return pipeline.Config{
		ReportPath:    reportPath,
		AssemblerDir:  in.AssemblerDir,
		ContigsPath:   in.Contigs,
		ReferencePath: in.Reference,
		Vocabulary:    e.Config.Report.Vocabulary,
		Threshold:     e.Config.Classifier.OverlapThreshold,
		Dialect:       d,
		InputFile:     e.Config.Handoff.InputFile,
		OutputFile:    e.Config.Handoff.OutputFile,
		CheckContigs:  e.CheckContigs,
		Logger:        e.Logger,
	}, nil
}

func (e Env) validate(ctx context.Context, in cliutil.Inputs) (pipeline.Config, error) {
	logging.OrNop(e.Logger).Info("validating input arguments")
	reportPath, err := cliutil.Validate(ctx, in, e.Config.Report.ContigsStdout)
	if err != nil {
		return pipeline.Config{}, err
	}
	return e.pipelineConfig(reportPath, in)
}

// Classify parses and classifies a report without touching the assembler.
func Classify(ctx context.Context, e Env, reportRoot string) error {
	reportPath, err := cliutil.ResolveReport(reportRoot, e.Config.Report.ContigsStdout)
	if err != nil {
		return err
	}
	pc, err := e.pipelineConfig(reportPath, cliutil.Inputs{})
	if err != nil {
		return err
	}
	pc.CheckContigs = false
	plan, err := pipeline.Analyze(ctx, pc)
	if err != nil {
		return err
	}
	return Emit(e, plan.Preview(), reportPath)
}

// Prepare writes the hand-off input and prints the prediction.
func Prepare(ctx context.Context, e Env, in cliutil.Inputs) error {
	pc, err := e.validate(ctx, in)
	if err != nil {
		return err
	}
	plan, err := pipeline.Prepare(ctx, pc)
	if err != nil {
		return err
	}
	return Emit(e, plan.Preview(), pc.ReportPath)
}

// Collect reads the hand-off output the assembler left behind.
func Collect(ctx context.Context, e Env, in cliutil.Inputs) error {
	pc, err := e.validate(ctx, in)
	if err != nil {
		return err
	}
	plan, err := pipeline.Analyze(ctx, pc)
	if err != nil {
		return err
	}
	res, err := pipeline.Collect(ctx, pc, plan, pc.OutputPath())
	if err != nil {
		return err
	}
	return Emit(e, res, pc.ReportPath)
}

// Run prepares, waits for both assembler stages, then collects.
func Run(ctx context.Context, e Env, in cliutil.Inputs) error {
	pc, err := e.validate(ctx, in)
	if err != nil {
		return err
	}
	r := e.Runner
	if r == nil {
		timeout, err := e.Config.WaitTimeout()
		if err != nil {
			return err
		}
		poll, err := e.Config.PollInterval()
		if err != nil {
			return err
		}
		r = &stage.FileRunner{OutputPath: pc.OutputPath(), Timeout: timeout, PollInterval: poll, Logger: e.Logger}
	}
	res, err := pipeline.Run(ctx, pc, r)
	if err != nil {
		return err
	}
	return Emit(e, res, pc.ReportPath)
}

// InitConfig saves the settled configuration to path so later runs can
// start from it.
func InitConfig(e Env, path string, force bool) error {
	if err := e.Config.Save(path, force); err != nil {
		return err
	}
	logging.OrNop(e.Logger).Info("wrote configuration", zap.String("path", path))
	return nil
}

// CheckFormat fails early on an output format nothing can render.
func CheckFormat(format string) error {
	if !hasFormat(format) {
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

