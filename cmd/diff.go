package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"snapdiff.dev/pkg/snapdiff/internal/domain"
	m "snapdiff.dev/pkg/snapdiff/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <before-dir> <after-dir>",
		Short: "Diff two screenshot trees without writing a report",
		Long:  diffLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := workflow.Compare(context.Background(), domain.CompareArgs{
				BeforeDir: m.Path(args[0]),
				AfterDir:  m.Path(args[1]),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
