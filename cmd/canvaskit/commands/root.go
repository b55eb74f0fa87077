// SPDX-License-Identifier: Unlicense OR MIT

// Package commands implements the canvaskit command line.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"gioui.org/canvaskit/internal/config"
	"gioui.org/canvaskit/internal/logger"
)

// CLI is the canvaskit command line interface.
type CLI struct {
	demo    Demo
	rootCmd *cobra.Command

	configPath string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

// Demo runs the interactive widget demo.
type Demo interface {
	RunDemo(ctx context.Context, cfg config.Config, log *slog.Logger) error
}

// DemoFunc adapts a function to a Demo.
type DemoFunc func(ctx context.Context, cfg config.Config, log *slog.Logger) error

func (f DemoFunc) RunDemo(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	return f(ctx, cfg, log)
}

// New creates a CLI that runs d for the demo command.
func New(d Demo) *CLI {
	rootCmd := &cobra.Command{
		Use:           "canvaskit",
		Short:         "Color picker, file input and canvas drawing toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		demo:    d,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "Path to a YAML configuration file")
	pf.StringVar(&c.logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newDemoCmd())
	rootCmd.AddCommand(c.newEncodeCmd())
	rootCmd.AddCommand(c.newDecodeCmd())
	rootCmd.AddCommand(c.newSizeCmd())
	rootCmd.AddCommand(c.newResizeCmd())
	rootCmd.AddCommand(c.newDrawCmd())
	rootCmd.AddCommand(c.newConfigCmd())

	return c
}

// setup loads the configuration and builds the logger before any
// subcommand runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	log, err := logger.New(cmd.ErrOrStderr(), logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.Format == "json",
	})
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = log
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

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
