package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/recolor/cmd/recolor/commands"
	"github.com/walteh/recolor/cmd/recolor/opts"
	"github.com/walteh/recolor/pkg/config"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the flags shared by every command
type rootFlags struct {
	configFile string
	debug      bool
}

// newRootCmd builds the command tree. Console output goes to stdout, structured logs to stderr.
func newRootCmd(stdout, stderr io.Writer, prompter plan.Prompter) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "recolor",
		Short: "Find a color in your resource files and swap it for another",
		Long: `recolor scans a folder of text resources (js, css, lua, json, html, xml, yaml)
for a color written as a name, a hex code, a {r, g, b, a} tuple or rgb()/rgba(),
and writes recolored copies into a sibling output folder. Every literal keeps its
original syntax. Source files are never modified.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), flags.debug, stdout, stderr)

			o, err := newRootOpts(ctx, flags.configFile, prompter)
			if err != nil {
				return err
			}
			*rootOpts = *o

			cmd.SetContext(ctx)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewScanCmd(rootOpts),
	)

	return cmd
}

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context, configFile string, prompter plan.Prompter) (*opts.RootOpts, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	return &opts.RootOpts{
		Config:   cfg,
		Logger:   log.FromContext(ctx),
		Prompter: prompter,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "run file (.yaml, .json or .hcl) with preset answers")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and puts both loggers on ctx
func setupLogging(ctx context.Context, debug bool, stdout, stderr io.Writer) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: stderr != os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, log.New(stdout, zlog))
}
