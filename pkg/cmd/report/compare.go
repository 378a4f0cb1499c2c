package report

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/velosprint/sprintlog-go/log"
	"github.com/velosprint/sprintlog-go/pkg/config"
	"github.com/velosprint/sprintlog-go/pkg/db/postgres"
	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/pkg/service"
)

var (
	modeArg string
	refArg  string
)

func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare videoKey...",
		Short: "print a comparison table for two or more sessions",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printComparison(args)
		},
	}
	cmd.Flags().StringVar(&modeArg,
		"mode",
		"total",
		"table mode (total, split)")
	cmd.Flags().StringVar(&splitArg,
		"split",
		"quarter",
		"split granularity for mode=split (quarter, half, full)")
	cmd.Flags().StringVar(&refArg,
		"ref",
		"",
		"videoKey of the reference session for delta columns")
	return cmd
}

func printComparison(keys []string) error {
	pool := postgres.InitWithURL(config.DB,
		postgres.WithTracer(log.GetLoggerByName("sql"), log.DebugLevel))
	defer pool.Close()

	svc := service.NewSessionService(pool)
	rows, err := svc.Compare(context.Background(), keys,
		service.CompareMode(modeArg), model.SplitChoice(splitArg), refArg)
	if err != nil {
		log.Error("could not build comparison", log.ErrorField(err))
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	header := "DIST"
	for _, key := range keys {
		header += "\t" + shortKey(key)
		if refArg != "" && key != refArg {
			header += "\tΔ" + shortKey(refArg)
		}
	}
	fmt.Fprintln(w, header)
	for _, row := range rows {
		line := row.Label
		for _, key := range keys {
			line += "\t" + cell(row.Values[key])
			if refArg != "" && key != refArg {
				line += "\t" + cell(row.Deltas[key])
			}
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func cell(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}

// video keys are sha256 hashes; eight chars are enough for a column header
func shortKey(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}
