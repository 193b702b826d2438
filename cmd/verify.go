package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrskwiw/routefix/internal/controller"
	"github.com/mrskwiw/routefix/internal/domain"
	m "github.com/mrskwiw/routefix/internal/model"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every target is migrated, without writing",
		Long: `Run the transform in memory against every manifest target and report its
state. Exits non-zero when any file still needs migration, fails the
verification pass or cannot be read. Intended for CI.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := loadTargets()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if err := ui.Start(ctx, controller.WithCheckMode()); err != nil {
				return err
			}

			report := migrator.Migrate(ctx, targets, domain.MigrateOptions{DryRun: true})

			for _, file := range report.Files {
				ui.ReportFile(ctx, file)
			}

			ui.Summarize(ctx, report)

			pending := report.Count(m.Rewritten)
			if pending > 0 || !report.Clean() {
				return fmt.Errorf("%d of %d file(s) are not cleanly migrated", len(report.Files)-report.Count(m.Skipped), len(report.Files))
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
