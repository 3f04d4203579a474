package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snapdiff.dev/pkg/snapdiff/internal/domain"
	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

var renderModeFlag string
var reportTemplateFlag string

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <before-dir> <after-dir> <output-dir>",
		Short: "Diff two screenshot trees and write an HTML report",
		Long:  reportLongDescription,
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			mode, err := m.ParseRenderMode(viper.GetString(renderModeConfigKey))
			if err != nil {
				return err
			}

			_, err = workflow.Report(context.Background(), domain.ReportArgs{
				BeforeDir: m.Path(args[0]),
				AfterDir:  m.Path(args[1]),
				OutputDir: m.Path(args[2]),
				Mode:      mode,
				Template:  m.Path(viper.GetString(reportTemplateConfigKey)),
			})

			return err
		},
	}

	configureReportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&renderModeFlag, modeFlagName, "m", defaultRenderMode, "report style: styled or minimal")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), renderModeConfigKey)

	cmd.Flags().StringVar(&reportTemplateFlag, templateFlagName, defaultReportTemplate, "custom page template containing a {{.Content}} placeholder")
	bindFlagToConfig(cmd.Flags().Lookup(templateFlagName), reportTemplateConfigKey)
}
