package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/recolor/cmd/recolor/opts"
	"github.com/walteh/recolor/pkg/color"
	"github.com/walteh/recolor/pkg/config"
	"github.com/walteh/recolor/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewScanCmd creates a new scan command
func NewScanCmd(opts *opts.RootOpts) *cobra.Command {
	var search, root string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report detected colors without writing anything",
		Long: `Scan walks the folder like run does and prints every line holding a
matching color, but never prompts and never creates the output folder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "scan").Logger().WithContext(cmd.Context())

			cfg := opts.Config
			if cfg == nil {
				cfg = config.Default()
			}
			if search == "" {
				search = cfg.SearchInput()
			}
			if root == "" {
				root = cfg.Root
			}
			if root == "" {
				root = "."
			}

			target, err := color.NewTargetSpec(search)
			if err != nil {
				return err
			}
			if target.Approximate {
				opts.Logger.Warningf("The first search color %q was not recognized as a valid name or hex. Hex and numeric detection will use %s.",
					target.Tokens[0], target.RGB.Hex())
			}

			abs, output, err := operation.ResolveRoot(root, cfg.OutputName)
			if err != nil {
				return err
			}

			op := operation.NewScanOperation(operation.Options{
				Root:       abs,
				Output:     output,
				Extensions: cfg.Extensions,
				Ignore:     cfg.Ignore,
				Target:     target,
				Logger:     opts.Logger,
			})
			if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op); err != nil {
				return errors.Errorf("scanning: %w", err)
			}

			report := op.Report()
			opts.Logger.LogNewline()
			opts.Logger.Infof("%d files scanned, %d with matches, %d colors found", report.Scanned, len(report.Order), report.Literals)
			if report.Failed > 0 {
				opts.Logger.Warningf("%d files could not be read", report.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "colors to search for, comma separated")
	cmd.Flags().StringVar(&root, "root", "", "folder to scan (default \".\")")

	return cmd
}
