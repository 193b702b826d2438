package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrskwiw/routefix/internal/controller"
	"github.com/mrskwiw/routefix/internal/domain"
	m "github.com/mrskwiw/routefix/internal/model"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the diffs a run would apply, without writing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := loadTargets()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if err := ui.Start(ctx, controller.WithPlanMode()); err != nil {
				return err
			}

			report := migrator.Migrate(ctx, targets, domain.MigrateOptions{
				DryRun:  true,
				Threads: viper.GetInt(runParallelConfigKey),
			})

			for _, file := range report.Files {
				ui.ReportFile(ctx, file)
			}

			ui.Summarize(ctx, report)

			if failed := report.Count(m.Failed); failed > 0 {
				return fmt.Errorf("%d file(s) could not be read", failed)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
