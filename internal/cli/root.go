// Package cli provides the command-line interface for the pizza builder.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pizza/internal/config"
	"github.com/katalvlaran/pizza/internal/log"
	"github.com/katalvlaran/pizza/internal/render"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey is used to store the resolved config in the command context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "pizza",
		Short: "pizza - Builder pattern demonstration",
		Long: `pizza assembles pizzas with a fluent builder and a director.

Three builder variants are available (general, four-cheese, pepperoni).
Orders can come from flags, PIZZA_* environment variables or pizza.yaml.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := log.Configure(log.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})
			if cfg.FileUsed != "" {
				logger.Debug().Str("file", cfg.FileUsed).Msg("using config file")
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./pizza.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|table|json|yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		formats := render.Formats()
		out := make([]string, len(formats))
		for i, f := range formats {
			out[i] = string(f)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewBuildCommand())
	rootCmd.AddCommand(NewMenuCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

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

// GetConfig retrieves the config from the command context, falling back to
// defaults when none was stored.
func GetConfig(ctx context.Context) *config.Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return c
		}
	}
	return &config.Config{
		Kind:     config.DefaultKind,
		Output:   config.DefaultOutput,
		LogLevel: config.DefaultLogLevel,
	}
}

// rendererFor returns the renderer selected by cfg.
func rendererFor(cfg *config.Config) (*render.Renderer, error) {
	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}
	return render.New(format), nil
}

// componentLogger returns a logger for one command.
func componentLogger(name string) zerolog.Logger {
	return log.WithComponent(name)
}
