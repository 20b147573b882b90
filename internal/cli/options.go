// Package cli defines the misclass flags and how they override the loaded
// configuration.
package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"misclass/internal/cliutil"
	"misclass/internal/config"
)

// Options holds all CLI flags. Zero values mean "not given" only when the
// matching flag was not Changed; Apply checks that.
type Options struct {
	ConfigPath string

	// Logging
	LogLevel  string
	LogFormat string
	Quiet     bool

	// Classification / hand-off
	Threshold    int
	Vocabulary   string
	Dialect      string
	WaitTimeout  string
	PollInterval string
	CheckContigs bool

	// Output
	Output   string
	NoHeader bool
	Sort     bool
	Pretty   bool
}

// Register wires the shared flags onto fs.
func (o *Options) Register(fs *pflag.FlagSet) {
	d := config.Default()
	fs.StringVar(&o.ConfigPath, "config", "misclass.yaml", "YAML config file (missing file means defaults)")

	fs.StringVar(&o.LogLevel, "log-level", d.Logging.Level, "log level: debug|info|warn|error")
	fs.StringVar(&o.LogFormat, "log-format", d.Logging.Format, "log format: console|json")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")

	fs.IntVar(&o.Threshold, "threshold", d.Classifier.OverlapThreshold, "minimum contig overlap (bp) for a broken-bone call")
	fs.StringVar(&o.Vocabulary, "vocabulary", d.Report.Vocabulary, "report vocabulary version")
	fs.StringVar(&o.Dialect, "dialect", d.Handoff.Dialect, "hand-off dialect: legacy|tagged")
	fs.StringVar(&o.WaitTimeout, "wait-timeout", d.Handoff.WaitTimeout, "how long run waits for the hand-off output (0 = forever)")
	fs.StringVar(&o.PollInterval, "poll-interval", d.Handoff.PollInterval, "hand-off output poll interval")
	fs.BoolVar(&o.CheckContigs, "check-contigs", true, "warn about broken-bone contigs missing from the contigs FASTA")

	fs.StringVarP(&o.Output, "output", "o", d.Output.Format, "output format: text|json|yaml")
	fs.BoolVar(&o.NoHeader, "no-header", false, "suppress the TSV header in text output")
	fs.BoolVar(&o.Pretty, "pretty", false, "text output: sketch each broken-bone candidate")
	fs.BoolVar(&o.Sort, "sort", false, "sort ignored and unknown lists by contig and position")
}

// Apply copies every flag the user set onto cfg, so flags beat the config
// file and environment.
func (o *Options) Apply(cfg *config.Config, fs *pflag.FlagSet) {
	set := func(name string) bool { return fs.Changed(name) }
	if set("log-level") {
		cfg.Logging.Level = o.LogLevel
	}
	if o.Quiet {
		cfg.Logging.Level = "error"
	}
	if set("log-format") {
		cfg.Logging.Format = o.LogFormat
	}
	if set("threshold") {
		cfg.Classifier.OverlapThreshold = o.Threshold
	}
	if set("vocabulary") {
		cfg.Report.Vocabulary = o.Vocabulary
	}
	if set("dialect") {
		cfg.Handoff.Dialect = o.Dialect
	}
	if set("wait-timeout") {
		cfg.Handoff.WaitTimeout = o.WaitTimeout
	}
	if set("poll-interval") {
		cfg.Handoff.PollInterval = o.PollInterval
	}
	if set("output") {
		cfg.Output.Format = o.Output
	}
	if o.NoHeader {
		cfg.Output.Header = false
	}
	if o.Pretty {
		cfg.Output.Pretty = true
	}
}

// Inputs maps the four positionals onto cliutil.Inputs.
func Inputs(args []string) (cliutil.Inputs, error) {
	if len(args) != 4 {
		return cliutil.Inputs{}, fmt.Errorf("expected 4 arguments (report, assembler dir, contigs, reference), got %d", len(args))
	}
	return cliutil.Inputs{
		ReportRoot:   args[0],
		AssemblerDir: args[1],
		Contigs:      args[2],
		Reference:    args[3],
	}, nil
}
