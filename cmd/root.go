// Package cmd provides the root command and CLI setup for snapdiff.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"snapdiff.dev/pkg/snapdiff/internal/adapter"
	"snapdiff.dev/pkg/snapdiff/internal/controller"
	"snapdiff.dev/pkg/snapdiff/internal/domain"
	"snapdiff.dev/pkg/snapdiff/internal/render"
)

var fsAdapter adapter.SnapshotFSAdapter
var renderer render.Renderer
var ui controller.UI
var workflow domain.Workflow

// verboseFlag switches logging to debug level when set.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSnapshotFSAdapter()
	renderer = render.NewHTMLRenderer(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, renderer, ui)
}

const treeLayoutHelp = `Screenshot trees are expected to look like:
  <root>/<locale>/<category>/<name>.png
e.g. shots/en/tools_views/SeedWords.png`

const rootLongDescription = `Snapdiff compares two directory trees of UI screenshots and reports which
screens were added, removed or changed between them. Screenshots are matched
by path and compared by content fingerprint, so timestamp-only differences
are ignored and renames show up as a remove plus an add.

` + treeLayoutHelp

const reportLongDescription = `Diff the before and after trees and write a self-contained HTML report.

The report page embeds every added, removed or changed screenshot, and the
referenced files are copied under <output-dir>/before and <output-dir>/after
so the page keeps rendering after the input trees are gone.

` + treeLayoutHelp

const diffLongDescription = `Diff the before and after trees and print the differences without writing
a report.

` + treeLayoutHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapdiff",
		Short: "Screenshot directory diff tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
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
