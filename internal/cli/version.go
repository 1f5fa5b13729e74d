package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/progrow/internal/cli/styles"
	"github.com/pablasso/progrow/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n",
				styles.TitleStyle.Render("progrow"),
				version.Version,
				styles.SubtleStyle.Render(version.Details()),
			)
			return err
		},
	}
}
