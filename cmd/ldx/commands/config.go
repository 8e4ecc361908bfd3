package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/ldx/internal/adapters/render"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change instance configs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the indices of every instance config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			indices, err := s.InstanceIndices()
			if err != nil {
				return err
			}
			names := make([]string, 0, len(indices))
			for _, i := range indices {
				names = append(names, strconv.Itoa(i))
			}
			return c.renderer(cmd).Names(names)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <index> [key]",
		Short: "Print an instance config or one of its settings",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			s, err := c.open()
			if err != nil {
				return err
			}
			cfg, err := s.Instance(index)
			if err != nil {
				return err
			}
			return showSettings(c.renderer(cmd), cfg.Settings, args[1:])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <index> key=value...",
		Short: "Change settings of an instance config",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			s, err := c.open()
			if err != nil {
				return err
			}
			changes, err := s.SetInstance(index, args[1:])
			if err != nil {
				return err
			}
			return c.renderer(cmd).Change(domain.ConfigChange{
				Path:    s.Installation.InstanceConfigPath(index),
				Index:   index,
				Changes: changes,
			})
		},
	})

	return cmd
}

func (c *CLI) newGlobalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "global",
		Short: "Read and change the installation-wide config",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [key]",
		Short: "Print the global config or one of its settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			cfg, err := s.Global()
			if err != nil {
				return err
			}
			return showSettings(c.renderer(cmd), cfg.Settings, args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set key=value...",
		Short: "Change settings of the global config",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			changes, err := s.SetGlobal(args)
			if err != nil {
				return err
			}
			return c.renderer(cmd).Change(domain.ConfigChange{
				Path:    s.Installation.GlobalConfigPath(),
				Global:  true,
				Changes: changes,
			})
		},
	})

	return cmd
}

// showSettings prints every leaf of settings, or the single value named by key.
func showSettings(r *render.Renderer, settings domain.Settings, key []string) error {
	if len(key) == 0 {
		return r.Settings(settings.Flatten())
	}
	v, ok := settings.Get(key[0])
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrSettingNotFound, "cannot show setting"), "key", key[0])
	}
	return r.Value(key[0], v)
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidParam, "instance index must be a non-negative integer"), "index", raw)
	}
	return index, nil
}
