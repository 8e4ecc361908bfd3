package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ldx/internal/core/domain"
)

func scopeFlag(cmd *cobra.Command) domain.KeymapScope {
	if recommended, _ := cmd.Flags().GetBool("recommended"); recommended {
		return domain.ScopeRecommended
	}
	return domain.ScopeCustomize
}

func (c *CLI) newKeymapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keymap",
		Short: "Inspect keyboard mappings and mapping profiles",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List keyboard mappings, or profiles with --profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind := domain.KindMapping
			if profiles, _ := cmd.Flags().GetBool("profiles"); profiles {
				kind = domain.KindProfile
			}
			s, err := c.open()
			if err != nil {
				return err
			}
			names, err := s.Keymaps(scopeFlag(cmd), kind)
			if err != nil {
				return err
			}
			return c.renderer(cmd).Names(names)
		},
	}
	list.Flags().Bool("recommended", false, "Use the vendor recommended files")
	list.Flags().Bool("profiles", false, "List mapping settings profiles instead of mappings")

	show := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a keyboard mapping, or a profile with --profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			if profile, _ := cmd.Flags().GetBool("profile"); profile {
				p, err := s.Profile(scopeFlag(cmd), args[0])
				if err != nil {
					return err
				}
				return c.renderer(cmd).Profile(p)
			}
			m, err := s.Keymap(scopeFlag(cmd), args[0])
			if err != nil {
				return err
			}
			return c.renderer(cmd).Keymap(m)
		},
	}
	show.Flags().Bool("recommended", false, "Use the vendor recommended files")
	show.Flags().Bool("profile", false, "Show a mapping settings profile instead of a mapping")

	cmd.AddCommand(list, show)
	return cmd
}

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Inspect macro recordings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List macro recordings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			names, err := s.Records()
			if err != nil {
				return err
			}
			return c.renderer(cmd).Names(names)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print a macro recording summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			rec, err := s.Record(args[0])
			if err != nil {
				return err
			}
			return c.renderer(cmd).Record(rec)
		},
	})

	return cmd
}
