// Package cmd provides the root command and CLI setup for routefix.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mrskwiw/routefix/internal/adapter"
	"github.com/mrskwiw/routefix/internal/controller"
	"github.com/mrskwiw/routefix/internal/domain"
	"github.com/mrskwiw/routefix/internal/manifest"
	m "github.com/mrskwiw/routefix/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var migrator domain.Migrator
var ui controller.UI

// manifestFlag points at the YAML file listing the (path, param) targets.
var manifestFlag string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	migrator = domain.NewMigrator(fsAdapter)
}

const rootLongDescription = `Routefix migrates Next.js route-handler files to the Next.js 15 async
params convention: it injects a RouteParams interface, normalizes handler
signatures, awaits the params bundle inside each handler's try block and
rewrites params.<name> references to the extracted local.

Targets are read from the manifest's "targets" list; without a manifest the
built-in QuizSquirrel route list is used. The transform is textual, not a
TypeScript parse: review the result, this tool does not validate its own
output beyond the built-in verification pass.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "routefix",
		Short:        "Next.js 15 async route params migrator",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&manifestFlag, manifestFlagName, "m",
			viper.GetString(manifestFlagName),
			"YAML manifest listing route files and their param names",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(manifestFlagName), manifestFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (defaults to "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadTargets resolves the target list: the configured manifest when it
// exists, otherwise the built-in default route list.
func loadTargets() ([]m.Target, error) {
	path := m.Path(viper.GetString(manifestFlagName))

	if _, err := os.Stat(string(path)); err != nil {
		if os.IsNotExist(err) {
			slog.Info("no manifest found, using built-in target list", "path", path)
			return manifest.Default(), nil
		}

		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return manifest.Load(path)
}
