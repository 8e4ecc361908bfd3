package commands

import (
	"regexp"

	"github.com/spf13/cobra"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/engine/batch"
	"go.trai.ch/zerr"
)

func (c *CLI) newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the supported ldconsole operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.renderer(cmd).Operations(c.app.Operations())
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			running, _ := cmd.Flags().GetBool("running")

			s, err := c.open()
			if err != nil {
				return err
			}

			var filter func(domain.Instance) bool
			if running {
				filter = domain.Instance.Running
			}
			instances, err := s.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return c.renderer(cmd).Instances(instances)
		},
	}
	cmd.Flags().Bool("running", false, "Only list instances whose Android system is up")
	return cmd
}

func (c *CLI) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <operation>",
		Short: "Run one ldconsole operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(cmd)
			if err != nil {
				return err
			}

			req := domain.Request{Params: params}
			req.Target.Name, _ = cmd.Flags().GetString("name")
			if cmd.Flags().Changed("index") {
				index, _ := cmd.Flags().GetInt("index")
				req.Target.Index = &index
			}

			// Reject malformed invocations before touching the installation.
			op, err := domain.LookupOperation(args[0])
			if err != nil {
				return err
			}
			if _, err := op.BuildArgs(req); err != nil {
				return err
			}

			s, err := c.open()
			if err != nil {
				return err
			}
			res, err := s.Exec(cmd.Context(), op.Name, req)
			if err != nil {
				return err
			}
			return c.renderer(cmd).Result(res)
		},
	}
	cmd.Flags().String("name", "", "Select the instance by name")
	cmd.Flags().Int("index", 0, "Select the instance by index")
	addParamFlag(cmd)
	return cmd
}

func (c *CLI) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <operation>",
		Short: "Run one ldconsole operation over several instances",
		Long: "Run one ldconsole operation over several instances, one after the other.\n" +
			"Select the instances with exactly one of --target, --all, --running, --stopped or --match.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(cmd)
			if err != nil {
				return err
			}
			spec, err := batchSpec(cmd)
			if err != nil {
				return err
			}
			delay, _ := cmd.Flags().GetDuration("delay")

			s, err := c.open()
			if err != nil {
				return err
			}
			outcomes, err := s.Batch(cmd.Context(), args[0], spec, params, delay)
			if err != nil {
				return err
			}
			if err := c.renderer(cmd).Outcomes(args[0], outcomes); err != nil {
				return err
			}
			return failedBatch(args[0], outcomes)
		},
	}
	cmd.Flags().StringArrayP("target", "t", nil, "Instance name or index (repeatable, order is kept)")
	cmd.Flags().Bool("all", false, "Select every instance")
	cmd.Flags().Bool("running", false, "Select running instances")
	cmd.Flags().Bool("stopped", false, "Select stopped instances")
	cmd.Flags().String("match", "", "Select instances whose name matches the regular expression")
	cmd.Flags().Duration("delay", 0, "Wait between two invocations, e.g. 2s")
	addParamFlag(cmd)
	return cmd
}

// batchSpec builds the selection from the batch flags. Exactly one selector must be given.
func batchSpec(cmd *cobra.Command) (batch.Spec, error) {
	flags := cmd.Flags()
	targets, _ := flags.GetStringArray("target")
	all, _ := flags.GetBool("all")
	running, _ := flags.GetBool("running")
	stopped, _ := flags.GetBool("stopped")
	match, _ := flags.GetString("match")

	var specs []batch.Spec
	if len(targets) > 0 {
		list := make([]domain.Target, 0, len(targets))
		for _, t := range targets {
			list = append(list, domain.ParseTarget(t))
		}
		specs = append(specs, batch.Explicit(list...))
	}
	if all {
		specs = append(specs, batch.All())
	}
	if running {
		specs = append(specs, batch.Spec{Filter: domain.Instance.Running})
	}
	if stopped {
		specs = append(specs, batch.Spec{Filter: func(i domain.Instance) bool { return !i.Running() }})
	}
	if flags.Changed("match") {
		re, err := regexp.Compile(match)
		if err != nil {
			return batch.Spec{}, zerr.With(zerr.Wrap(domain.ErrInvalidTargetSpec, err.Error()), "match", match)
		}
		specs = append(specs, batch.Spec{Filter: func(i domain.Instance) bool { return re.MatchString(i.Name) }})
	}

	if len(specs) != 1 {
		return batch.Spec{}, zerr.Wrap(domain.ErrInvalidTargetSpec, "use exactly one of --target, --all, --running, --stopped or --match")
	}
	return specs[0], nil
}

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <file.yaml>",
		Short: "Run a batch plan with per-instance parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open()
			if err != nil {
				return err
			}
			p, outcomes, err := s.Plan(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := c.renderer(cmd).Outcomes(p.Operation, outcomes); err != nil {
				return err
			}
			return failedBatch(p.Operation, outcomes)
		},
	}
}
