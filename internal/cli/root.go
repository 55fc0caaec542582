// Package cli provides the command-line interface for tabclean.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/paveg/tabclean/internal/clean"
	"github.com/paveg/tabclean/internal/config"
	tbio "github.com/paveg/tabclean/internal/io"
	"github.com/paveg/tabclean/internal/render"
	"github.com/paveg/tabclean/internal/table"
	"github.com/paveg/tabclean/internal/version"
	"github.com/spf13/cobra"
)

// envKey stores the per-invocation environment in the command context.
type envKey struct{}

// env is what every subcommand needs: configuration, logger, output.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	renderer *render.Renderer
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "tabclean",
		Short: "Clean tabular data files",
		Long: `tabclean loads a table from a .csv or .html file, reports missing values,
fills them by column position and flags numeric values outside the IQR fences.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}

			renderer, err := render.New(cmd.OutOrStdout(), cfg.Output, cfg.MaxRows)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, envKey{}, &env{
				cfg:      cfg,
				logger:   logger,
				renderer: renderer,
			}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./.tabclean.yaml)")
	flags.StringP("output", "o", config.DefaultOutput, "Output format (table|json|yaml)")
	flags.String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	flags.String("log-format", config.DefaultLogFormat, "Log format (text|json)")
	flags.Int("max-rows", config.DefaultMaxRows, "Rows printed by table output (0 for all)")
	flags.StringP("delimiter", "d", config.DefaultDelimiter, "CSV field delimiter")
	flags.String("comment", "", "CSV comment character")
	flags.StringSlice("null-values", nil, "Extra cell values read as null")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON, config.OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newNullsCommand())
	rootCmd.AddCommand(newCleanCommand())
	rootCmd.AddCommand(newOutliersCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// envFrom returns the environment stored by PersistentPreRunE, or one
// built from defaults when the command runs without the root.
func envFrom(cmd *cobra.Command) *env {
	if ctx := cmd.Context(); ctx != nil {
		if e, ok := ctx.Value(envKey{}).(*env); ok {
			return e
		}
	}
	cfg := config.NewConfig()
	renderer, _ := render.New(cmd.OutOrStdout(), cfg.Output, cfg.MaxRows)
	return &env{
		cfg:      &cfg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		renderer: renderer,
	}
}

// loadTable loads path with the configured reader options.
func (e *env) loadTable(path string) (*table.Table, error) {
	e.logger.Debug("loading table", "path", path, "format", tbio.Extension(path))
	t, err := tbio.Load(path, e.cfg.LoadOptions())
	if err != nil {
		return nil, err
	}
	e.logger.Info("loaded table", "path", path, "rows", t.Len(), "columns", t.Width())
	return t, nil
}

func (e *env) cleaner() *clean.Cleaner {
	return clean.New(clean.WithLogger(e.logger))
}
