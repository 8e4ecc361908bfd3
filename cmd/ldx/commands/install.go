package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Manage registered LDPlayer installations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered installations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roots, err := c.app.Installations()
			if err != nil {
				return err
			}
			return c.renderer(cmd).Installations(roots)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <path>",
		Short: "Find the installation containing path, validate it and register it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, added, err := c.app.AddInstallation(cmd.Context(), args[0], c.options())
			if err != nil {
				return err
			}
			if !added {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is already registered\n", root)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", root)
			return err
		},
	})

	return cmd
}
