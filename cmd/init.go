package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrskwiw/routefix/internal/manifest"
	m "github.com/mrskwiw/routefix/internal/model"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default routefix.yaml manifest",
		Long: `Create a manifest at the configured path populated with the built-in
target list so it can be edited manually. Refuses to overwrite an
existing file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := m.Path(viper.GetString(manifestFlagName))

			return manifest.Save(targetPath, manifest.Default())
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
