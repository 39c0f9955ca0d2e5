package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "secinspect",
		Short:         "Heuristic security scanner for PHP / WordPress code",
		Long:          `secinspect walks a code tree, flags lines that read request input, query the database or print unescaped values, and reports files missing nonce, capability or prepared-query safeguards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newScanCmd(stdout, stderr))
	rootCmd.AddCommand(newWatchCmd(stdout, stderr))
	rootCmd.AddCommand(newVersionCmd(stdout))
	return rootCmd
}
