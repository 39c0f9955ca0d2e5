package main

import (
	"fmt"
	"io"

	"github.com/aleister1102/secinspect/internal/report"
	"github.com/spf13/cobra"
)

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool name and version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "%s %s\n", report.ToolName, report.ToolVersion)
		},
	}
}
