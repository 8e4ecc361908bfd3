package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrUnknownOperation is returned when an operation name is not in the operation table.
	ErrUnknownOperation = zerr.New("unknown ldconsole operation")

	// ErrAmbiguousTarget is returned when an instance is selected by both name and index.
	ErrAmbiguousTarget = zerr.New("instance must be selected by name or by index, not both")

	// ErrMissingTarget is returned when an operation requires an instance and none was selected.
	ErrMissingTarget = zerr.New("operation requires an instance name or index")

	// ErrUnexpectedTarget is returned when an instance is selected for an operation that takes none,
	// or selected by name for an operation that only accepts an index.
	ErrUnexpectedTarget = zerr.New("operation does not accept this instance selector")

	// ErrMissingParam is returned when a required operation parameter is absent.
	ErrMissingParam = zerr.New("missing required parameter")

	// ErrUnknownParam is returned when a parameter is not part of the operation's schema.
	ErrUnknownParam = zerr.New("unknown parameter")

	// ErrInvalidParam is returned when a command line parameter or argument cannot be parsed.
	ErrInvalidParam = zerr.New("invalid command line parameter")

	// ErrNotBatchable is returned when a targeting specification is supplied for an operation
	// that cannot be repeated across instances.
	ErrNotBatchable = zerr.New("operation is not batchable")

	// ErrInvalidTargetSpec is returned when a targeting specification has both or neither of
	// an explicit list and a predicate.
	ErrInvalidTargetSpec = zerr.New("targeting specification needs exactly one of an explicit list or a predicate")

	// ErrInstanceNotFound is returned when an explicit target matches no known instance.
	ErrInstanceNotFound = zerr.New("instance not found")

	// ErrConsoleUnavailable is returned when the ldconsole executable is missing or cannot be run.
	ErrConsoleUnavailable = zerr.New("ldconsole executable is unavailable")

	// ErrCommandFailed is returned when ldconsole exits with a non-zero status.
	ErrCommandFailed = zerr.New("ldconsole exited with a non-zero status")

	// ErrDecodeFailed is returned when ldconsole output cannot be decoded into the operation's result shape.
	ErrDecodeFailed = zerr.New("failed to decode ldconsole output")

	// ErrUnknownEncoding is returned when the configured output code page is not recognized.
	ErrUnknownEncoding = zerr.New("unknown output encoding")

	// ErrBatchFailed is returned when at least one target of a batch run failed.
	ErrBatchFailed = zerr.New("batch execution failed")

	// ErrConfigReadFailed is returned when a config file is missing or cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigMarshalFailed is returned when a config document cannot be encoded.
	ErrConfigMarshalFailed = zerr.New("failed to encode config file")

	// ErrConfigWriteFailed is returned when a config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrSettingNotFound is returned when a settings key does not exist.
	ErrSettingNotFound = zerr.New("setting not found")

	// ErrInvalidSetting is returned when a key=value assignment is malformed.
	ErrInvalidSetting = zerr.New("invalid setting assignment, expected key=value")

	// ErrInstallationNotFound is returned when no installation root can be located from a path.
	ErrInstallationNotFound = zerr.New("could not find an LDPlayer installation")

	// ErrInvalidInstallation is returned when an installation root lacks the expected layout
	// or its console does not respond.
	ErrInvalidInstallation = zerr.New("invalid LDPlayer installation")

	// ErrNoInstallations is returned when no installation is configured.
	ErrNoInstallations = zerr.New("no LDPlayer installation configured, run 'ldx install add <path>' or pass --root")

	// ErrInstallIndexOutOfRange is returned when the selected registry entry does not exist.
	ErrInstallIndexOutOfRange = zerr.New("installation index out of range")

	// ErrUserConfigReadFailed is returned when the user config cannot be read.
	ErrUserConfigReadFailed = zerr.New("failed to read user config")

	// ErrUserConfigParseFailed is returned when the user config is malformed.
	ErrUserConfigParseFailed = zerr.New("failed to parse user config")

	// ErrUserConfigWriteFailed is returned when the user config cannot be written.
	ErrUserConfigWriteFailed = zerr.New("failed to write user config")

	// ErrPlanReadFailed is returned when a batch plan cannot be read.
	ErrPlanReadFailed = zerr.New("failed to read batch plan")

	// ErrPlanParseFailed is returned when a batch plan cannot be parsed.
	ErrPlanParseFailed = zerr.New("failed to parse batch plan")

	// ErrInvalidPlan is returned when a batch plan is structurally invalid.
	ErrInvalidPlan = zerr.New("invalid batch plan")

	// ErrWatchFailed is returned when the config watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch config directory")
)

var usageErrors = []error{
	ErrUnknownOperation,
	ErrAmbiguousTarget,
	ErrMissingTarget,
	ErrUnexpectedTarget,
	ErrMissingParam,
	ErrUnknownParam,
	ErrInvalidParam,
	ErrNotBatchable,
	ErrInvalidTargetSpec,
}

// IsUsageError reports whether err is a caller error detected before any ldconsole invocation.
func IsUsageError(err error) bool {
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
