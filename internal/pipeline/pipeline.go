package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"misclass/internal/aggregate"
	"misclass/internal/classify"
	"misclass/internal/common"
	"misclass/internal/fasta"
	"misclass/internal/logging"
	"misclass/internal/protocol"
	"misclass/internal/report"
	"misclass/internal/stage"
)

// Config controls one run.
type Config struct {
	ReportPath    string // resolved contigs stdout file
	AssemblerDir  string
	ContigsPath   string
	ReferencePath string

	Vocabulary string
	Threshold  int
	Dialect    protocol.Dialect

	InputFile  string // hand-off input name inside AssemblerDir
	OutputFile string // hand-off output name inside AssemblerDir

	// CheckContigs warns about broken-bone contigs absent from ContigsPath.
	CheckContigs bool

	Logger *zap.Logger
}

// InputPath is the hand-off input location.
func (c Config) InputPath() string { return filepath.Join(c.AssemblerDir, c.InputFile) }

// OutputPath is the hand-off output location.
func (c Config) OutputPath() string { return filepath.Join(c.AssemblerDir, c.OutputFile) }

func (c Config) header() protocol.Header {
	return protocol.Header{ContigsPath: c.ContigsPath, ReferencePath: c.ReferencePath}
}

// Plan is the classified report a run works from.
type Plan struct {
	Parsed  report.Result
	Buckets classify.Buckets
}

// Preview is the plan as a result with every candidate pending.
func (p Plan) Preview() aggregate.Result { return aggregate.Preview(p.Buckets, p.Parsed.Skipped) }

// Analyze parses and classifies the report.
func Analyze(ctx context.Context, cfg Config) (Plan, error) {
	log := logging.OrNop(cfg.Logger)
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	vocab, err := report.LookupVocabulary(cfg.Vocabulary)
	if err != nil {
		return Plan{}, err
	}
	p, err := report.NewParser(vocab)
	if err != nil {
		return Plan{}, err
	}
	log.Info("parsing contigs with extensive misassemblies", zap.String("report", cfg.ReportPath))
	parsed, err := p.ParseFile(cfg.ReportPath)
	if err != nil {
		return Plan{}, err
	}
	for _, s := range parsed.Skipped {
		log.Warn("skipped misassembly block",
			zap.String("contig", s.Contig), zap.Int("line", s.Line), zap.String("reason", s.Reason))
	}
	log.Info("extensive misassemblies found",
		zap.Int("records", len(parsed.Records)), zap.Int("skipped", len(parsed.Skipped)))

	b := classify.New(cfg.Threshold).Classify(parsed.Records)
	log.Info("predicted classification",
		zap.Int("broken_bone", len(b.BrokenBone)),
		zap.Int("ignored", len(b.Ignored)),
		zap.Int("unknown", len(b.Unknown)))

	if cfg.CheckContigs && len(b.BrokenBone) > 0 {
		if err := warnMissingContigs(log, cfg.ContigsPath, b.BrokenBone); err != nil {
			return Plan{}, err
		}
	}
	return Plan{Parsed: parsed, Buckets: b}, nil
}

func warnMissingContigs(log *zap.Logger, path string, records []report.Misassembly) error {
	ids, err := fasta.IDs(path)
	if err != nil {
		return fmt.Errorf("scan contigs: %w", err)
	}
	names := make([]string, 0, len(records))
	for _, m := range records {
		names = append(names, m.Contig)
	}
	for _, n := range common.UniqueNames(names) {
		if _, ok := ids[n]; !ok {
			log.Warn("broken-bone contig not found in contigs FASTA", zap.String("contig", n), zap.String("fasta", path))
		}
	}
	return nil
}

// Prepare analyzes the report and writes the hand-off input.
func Prepare(ctx context.Context, cfg Config) (Plan, error) {
	plan, err := Analyze(ctx, cfg)
	if err != nil {
		return Plan{}, err
	}
	path := cfg.InputPath()
	logging.OrNop(cfg.Logger).Info("writing info for distance estimation stage",
		zap.String("path", path), zap.String("dialect", string(cfg.Dialect)))
	data := protocol.Marshal(cfg.header(), plan.Buckets.BrokenBone, cfg.Dialect)
	if err := writeAtomic(path, data); err != nil {
		return Plan{}, fmt.Errorf("write hand-off input %s: %w", path, err)
	}
	return plan, nil
}

// Verify drives both external stages and returns the hand-off output path.
func Verify(ctx context.Context, r stage.Runner, inputPath string) (string, error) {
	return stage.Run(ctx, r, inputPath)
}

// Collect decodes the hand-off output at path against plan.
func Collect(ctx context.Context, cfg Config, plan Plan, path string) (aggregate.Result, error) {
	if err := ctx.Err(); err != nil {
		return aggregate.Result{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return aggregate.Result{}, fmt.Errorf("read hand-off output %s: %w", path, err)
	}
	defer fh.Close()

	verdicts, err := protocol.Decode(fh, plan.Buckets.BrokenBone, cfg.Dialect)
	if err != nil {
		return aggregate.Result{}, fmt.Errorf("decode %s: %w", path, err)
	}
	res, err := aggregate.Aggregate(plan.Buckets, verdicts, plan.Parsed.Skipped)
	if err != nil {
		return aggregate.Result{}, err
	}
	logging.OrNop(cfg.Logger).Info("verdicts collected",
		zap.Int("not_ready", res.Tally.NotReady),
		zap.Int("intact", res.Tally.Intact),
		zap.Int("broken", res.Tally.Broken))
	return res, nil
}

// Run performs Prepare, Verify and Collect in sequence.
func Run(ctx context.Context, cfg Config, r stage.Runner) (aggregate.Result, error) {
	plan, err := Prepare(ctx, cfg)
	if err != nil {
		return aggregate.Result{}, err
	}
	out, err := Verify(ctx, r, cfg.InputPath())
	if err != nil {
		return aggregate.Result{}, err
	}
	return Collect(ctx, cfg, plan, out)
}

// writeAtomic writes data next to path and renames it into place so the
// assembler never sees a half-written file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".misclass-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := bytes.NewReader(data).WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
