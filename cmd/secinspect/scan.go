package main

import (
	"io"

	"github.com/aleister1102/secinspect/internal/inspector"
	"github.com/aleister1102/secinspect/internal/reporter"
	"github.com/spf13/cobra"
)

func newScanCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &scanFlags{}
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a code tree and print the findings report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, flags, args, stderr)
			if err != nil {
				return err
			}
			return scanOnce(s, inspector.New(s.logger), reporter.NewReportWriter(s.cfg.ReporterConfig, s.logger), stdout)
		},
	}
	flags.register(cmd)
	return cmd
}

func scanOnce(s *settings, insp *inspector.Inspector, writer *reporter.ReportWriter, stdout io.Writer) error {
	rep, err := insp.Scan(s.cfg.ScanConfig)
	if err != nil {
		return err
	}
	return writer.Write(rep, stdout)
}
