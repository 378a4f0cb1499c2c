package report

import (
	"github.com/spf13/cobra"
)

func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "commands to print session reports",
	}

	cmd.AddCommand(NewMetricsCmd())
	cmd.AddCommand(NewCompareCmd())

	return cmd
}

var splitArg string
