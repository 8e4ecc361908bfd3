package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/zerr"
)

// addParamFlag registers the repeatable -p key=value flag.
func addParamFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("param", "p", nil, "Operation parameter as key=value (repeatable)")
}

// parseParams turns -p key=value flags into operation parameters. Values may contain '='.
func parseParams(cmd *cobra.Command) (map[string]string, error) {
	raw, _ := cmd.Flags().GetStringArray("param")
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(raw))
	for _, r := range raw {
		key, value, ok := strings.Cut(r, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidParam, "parameter must be key=value"), "param", r)
		}
		out[key] = value
	}
	return out, nil
}

// failedBatch returns ErrBatchFailed when any outcome carries an error.
func failedBatch(operation string, outcomes []domain.Outcome) error {
	n := domain.CountFailed(outcomes)
	if n == 0 {
		return nil
	}
	err := zerr.With(zerr.Wrap(domain.ErrBatchFailed, "some targets failed"), "operation", operation)
	return zerr.With(err, "failed", n)
}
