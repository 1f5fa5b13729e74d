package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/progrow/internal/cli/styles"
	"github.com/pablasso/progrow/internal/version"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progrow",
		Short: "Render labeled progress rows as aligned text bars",
		Long: `Progrow renders named progress values as fixed-width rows of block-glyph bars,
with optional CURRENT / MAX fractions and percentages aligned across rows.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// run executes cmd and reports a failure once on its error stream.
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.ErrorStyle.Render("Error: "+err.Error()))
	}
	return err
}

// Execute runs the root command.
func Execute() error {
	return run(newRootCmd())
}
