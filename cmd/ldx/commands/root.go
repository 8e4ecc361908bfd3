// Package commands implements the CLI commands for ldx.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/ldx/internal/adapters/detector"
	"go.trai.ch/ldx/internal/adapters/render"
	"go.trai.ch/ldx/internal/app"
	"go.trai.ch/ldx/internal/build"
	"go.trai.ch/ldx/internal/core/domain"
)

// CLI represents the command line interface for ldx.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	global  globalFlags
}

// Application represents the application logic interface.
type Application interface {
	Operations() []domain.Operation
	Installations() ([]string, error)
	AddInstallation(ctx context.Context, path string, opts app.Options) (string, bool, error)
	Open(opts app.Options) (*app.Session, error)
	SetLogJSON(enable bool)
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	root     string
	console  string
	install  int
	encoding string
	output   string
	logJSON  bool
}

// envFallbacks maps persistent flags to the environment variables read when the flag is unset.
var envFallbacks = map[string]string{
	"root":     "LDX_ROOT",
	"console":  "LD_CONSOLE_PATH",
	"install":  "LDX_INSTALL",
	"encoding": "LDX_ENCODING",
	"log-json": "LDX_LOG_JSON",
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ldx",
		Short:         "Control LDPlayer instances through ldconsole",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.global.root, "root", "", "LDPlayer installation root (env LDX_ROOT)")
	flags.StringVar(&c.global.console, "console", "", "ldconsole executable, path or name in PATH (env LD_CONSOLE_PATH)")
	flags.IntVar(&c.global.install, "install", 0, "Index of the registered installation to use (env LDX_INSTALL)")
	flags.StringVar(&c.global.encoding, "encoding", domain.DefaultEncoding, "Code page of ldconsole output (env LDX_ENCODING)")
	flags.StringVarP(&c.global.output, "output", "o", "auto", "Output mode: auto, table, plain or json")
	flags.BoolVar(&c.global.logJSON, "log-json", false, "Write log records as JSON (env LDX_LOG_JSON)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := applyEnv(cmd); err != nil {
			return err
		}
		if _, err := detector.ParseMode(c.global.output); err != nil {
			return err
		}
		c.app.SetLogJSON(c.global.logJSON)
		return nil
	}

	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newOpsCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newExecCmd())
	rootCmd.AddCommand(c.newBatchCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newGlobalCmd())
	rootCmd.AddCommand(c.newKeymapCmd())
	rootCmd.AddCommand(c.newRecordCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newWatchCmd())

	return c
}

// applyEnv copies environment fallbacks into persistent flags the user did not set.
func applyEnv(cmd *cobra.Command) error {
	for name, env := range envFallbacks {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) options() app.Options {
	return app.Options{
		Root:     c.global.root,
		Console:  c.global.console,
		Install:  c.global.install,
		Encoding: c.global.encoding,
	}
}

func (c *CLI) open() (*app.Session, error) {
	return c.app.Open(c.options())
}

func (c *CLI) renderer(cmd *cobra.Command) *render.Renderer {
	mode := detector.ResolveMode(detector.DetectEnvironment(), c.global.output)
	return render.New(cmd.OutOrStdout(), mode)
}
