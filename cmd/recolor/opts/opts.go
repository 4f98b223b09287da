package opts

import (
	"github.com/walteh/recolor/pkg/config"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/plan"
)

// RootOpts contains shared options used by all commands.
// It is filled in by the root command before any subcommand runs.
type RootOpts struct {
	Config   *config.Config
	Logger   *log.Logger
	Prompter plan.Prompter
}
