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

func NewMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics videoKey",
		Short: "print segment metrics for one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printMetrics(args[0])
		},
	}
	cmd.Flags().StringVar(&splitArg,
		"split",
		"",
		"regenerate the split grid (quarter, half, full) instead of using the stored distances")
	return cmd
}

func printMetrics(videoKey string) error {
	pool := postgres.InitWithURL(config.DB,
		postgres.WithTracer(log.GetLoggerByName("sql"), log.DebugLevel))
	defer pool.Close()

	svc := service.NewSessionService(pool)
	rows, err := svc.Metrics(context.Background(), videoKey, model.SplitChoice(splitArg))
	if err != nil {
		log.Error("could not compute metrics",
			log.String("videoKey", videoKey), log.ErrorField(err))
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "FROM\tTO\tTIME\tDIST\tKM/H\tACCEL")
	for _, row := range rows {
		accel := "-"
		if row.Acceleration != nil {
			accel = fmt.Sprintf("%.3f", *row.Acceleration)
		}
		fmt.Fprintf(w, "%v\t%v\t%.3f\t%.3f\t%.3f\t%s\n",
			row.From, row.To, row.DeltaTime, row.DeltaDistance, row.VelocityKmh, accel)
	}
	return w.Flush()
}
