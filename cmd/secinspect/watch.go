package main

import (
	"io"
	"time"

	"github.com/aleister1102/secinspect/internal/inspector"
	"github.com/aleister1102/secinspect/internal/reporter"
	"github.com/aleister1102/secinspect/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &scanFlags{}
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Scan a code tree and re-scan whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, flags, args, stderr)
			if err != nil {
				return err
			}

			insp := inspector.New(s.logger)
			writer := reporter.NewReportWriter(s.cfg.ReporterConfig, s.logger)

			// The first scan also validates the root.
			if err := scanOnce(s, insp, writer, stdout); err != nil {
				return err
			}

			debounce := time.Duration(s.cfg.WatchConfig.DebounceMillis) * time.Millisecond
			w, err := watcher.New(s.cfg.ScanConfig.Root, debounce, s.logger)
			if err != nil {
				return err
			}
			defer w.Close()
			w.Exclude(s.cfg.ReporterConfig.OutputPath, s.cfg.ReporterConfig.ParquetPath)

			return w.Run(cmd.Context(), func() {
				if err := scanOnce(s, insp, writer, stdout); err != nil {
					s.logger.Error().Err(err).Msg("Re-scan failed")
				}
			})
		},
	}
	flags.register(cmd)
	return cmd
}
