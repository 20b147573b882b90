// Package app is the misclass command tree and its exit-code contract:
// 0 on success, 1 on any failure, 130 when interrupted.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"misclass/internal/appcore"
	"misclass/internal/cli"
	"misclass/internal/cliutil"
	"misclass/internal/config"
	"misclass/internal/logging"
	"misclass/internal/version"
	"misclass/internal/writers"
)

type state struct {
	opts   cli.Options
	env    appcore.Env
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer, env appcore.Env) *cobra.Command {
	st := &state{env: env, stderr: stderr}
	st.env.Stdout = stdout

	root := &cobra.Command{
		Use:   "misclass",
		Short: "Classify extensive misassemblies and verify them against the assembler",
		Long: `misclass reads a QUAST contigs report, buckets every extensive misassembly
as broken bone, ignored or unknown, and exchanges the broken-bone candidates
with the assembler's distance-estimation stage through a pair of hand-off files.

Configuration is read from --config (YAML), then .env and MISCLASS_* variables,
then flags.`,
		Example:           cli.Examples,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: st.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if st.env.Logger != nil {
				_ = st.env.Logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	st.opts.Register(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "classify <report>",
			Short: "Parse and classify a report; no assembler needed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return appcore.Classify(cmd.Context(), st.env, args[0])
			},
		},
		st.inputsCmd("prepare", "Write the hand-off input for the assembler's first stage", appcore.Prepare),
		st.inputsCmd("collect", "Read the assembler's hand-off output and report verdicts", appcore.Collect),
		st.inputsCmd("run", "Prepare, wait for the assembler, then collect", appcore.Run),
		st.configCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			// no config or logger needed
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "misclass version %s\n", version.Version)
				return err
			},
		},
	)
	return root
}

func (st *state) inputsCmd(name, short string, fn func(context.Context, appcore.Env, cliutil.Inputs) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <report> <assembler-dir> <contigs.fasta> <reference.fasta>",
		Short: short,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := cli.Inputs(args)
			if err != nil {
				return err
			}
			return fn(cmd.Context(), st.env, in)
		},
	}
}

func (st *state) configCmd() *cobra.Command {
	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration as YAML (default: --config path)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := st.opts.ConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			return appcore.InitConfig(st.env, path, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd := &cobra.Command{Use: "config", Short: "Manage the misclass configuration file"}
	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}

// setup loads config, applies flags and builds the logger.
func (st *state) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(st.opts.ConfigPath)
	if err != nil {
		return err
	}
	st.opts.Apply(cfg, cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := appcore.CheckFormat(cfg.Output.Format); err != nil {
		return err
	}
	logger, err := logging.New(st.stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	st.env.Config = cfg
	st.env.Logger = logger
	st.env.Sort = st.opts.Sort
	st.env.CheckContigs = st.opts.CheckContigs
	return nil
}

// RunContext executes argv and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return runWith(ctx, argv, stdout, stderr, appcore.Env{})
}

func runWith(ctx context.Context, argv []string, stdout, stderr io.Writer, env appcore.Env) int {
	root := newRootCmd(stdout, stderr, env)
	root.SetArgs(argv)
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return 130
	case writers.IsBrokenPipe(err):
		return 0
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	return 1
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
