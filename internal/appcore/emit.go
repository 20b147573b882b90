package appcore

import (
	"bufio"
	"slices"

	"misclass/internal/aggregate"
	"misclass/internal/common"
	"misclass/internal/output"
	"misclass/internal/writers"
)

// Emit renders res to e.Stdout in the configured format.
func Emit(e Env, res aggregate.Result, reportPath string) error {
	if e.Sort {
		res.Ignored = common.SortMisassemblies(res.Ignored)
		res.Unknown = common.SortMisassemblies(res.Unknown)
	}
	rep := output.ToAPIReport(res, output.Meta{
		Report:     reportPath,
		Vocabulary: e.Config.Report.Vocabulary,
		Threshold:  e.Config.Classifier.OverlapThreshold,
	})
	bw := bufio.NewWriter(e.Stdout)
	if err := writers.WriteReport(e.Config.Output.Format, bw, rep, writers.Options{Header: e.Config.Output.Header, Pretty: e.Config.Output.Pretty}); err != nil {
		return err
	}
	return bw.Flush()
}

func hasFormat(format string) bool { return slices.Contains(writers.Formats(), format) }
