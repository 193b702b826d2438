package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrskwiw/routefix/internal/controller"
	"github.com/mrskwiw/routefix/internal/domain"
	m "github.com/mrskwiw/routefix/internal/model"
)

var runParallelFlag int
var runDryRunFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Migrate all manifest targets in place",
		Long: `Rewrite every route file listed in the manifest to the async params
convention. Files already carrying a RouteParams interface are skipped.
With --dry-run nothing is written and each change is shown as a diff.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := loadTargets()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			mode := controller.WithApplyMode()
			if runDryRunFlag {
				mode = controller.WithPlanMode()
			}

			if err := ui.Start(ctx, mode); err != nil {
				return err
			}

			report := migrator.Migrate(ctx, targets, domain.MigrateOptions{
				DryRun:  runDryRunFlag,
				Threads: viper.GetInt(runParallelConfigKey),
			})

			for _, file := range report.Files {
				ui.ReportFile(ctx, file)
			}

			ui.Summarize(ctx, report)

			if !report.Clean() {
				flagged := report.Count(m.VerificationFailed) + report.Count(m.Failed)
				return fmt.Errorf("%d of %d file(s) need attention", flagged, len(report.Files))
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files migrated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().BoolVarP(&runDryRunFlag, dryRunFlagName, "n", false, "show what would change without writing")
}
