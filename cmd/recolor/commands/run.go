package commands

import (
	"context"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/recolor/cmd/recolor/opts"
	"github.com/walteh/recolor/pkg/color"
	"github.com/walteh/recolor/pkg/config"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/operation"
	"github.com/walteh/recolor/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// runFlags pre-answer the run prompts
type runFlags struct {
	search     string
	replace    string
	root       string
	outputName string
	noBanner   bool
}

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Interactively recolor a folder of resources",
		Long: `Run asks for the colors to search for, the replacement color and the folder
to scan, then walks the folder file by file. For every file with a match it
shows the highlighted lines and asks what to do:
1. Replace every detected color automatically
2. Choose a replacement for each distinct color
3. Confirm each replacement line by line
4. Skip the file
Recolored copies are written under <parent of folder>/result-uhq.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "run").Logger().WithContext(cmd.Context())

			if !flags.noBanner {
				printBanner()
			}

			if err := runRecolor(ctx, opts, flags); err != nil {
				return errors.Errorf("running recolor: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", `colors to search for, comma separated (e.g. "purple,#800080")`)
	cmd.Flags().StringVar(&flags.replace, "replace", "", "replacement color (name or hex)")
	cmd.Flags().StringVar(&flags.root, "root", "", "folder to scan")
	cmd.Flags().StringVar(&flags.outputName, "output-name", "", "name of the output folder created next to the scanned folder")
	cmd.Flags().BoolVar(&flags.noBanner, "no-banner", false, "do not print the banner")

	return cmd
}

// 🎨 printBanner prints the big title and the safety notes
func printBanner() {
	_ = pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("re", pterm.FgMagenta.ToStyle()),
		putils.LettersFromStringWithStyle("color", pterm.FgCyan.ToStyle()),
	).Render()

	pterm.DefaultParagraph.Println("Transform any color into another within your resources.")
	pterm.Warning.Println("Modified files are saved in a new folder next to your scanned folder.")
	pterm.Warning.Println("Remember to back up your resources before starting!")
	pterm.Println()
}

func runRecolor(ctx context.Context, o *opts.RootOpts, flags *runFlags) error {
	logger := o.Logger
	cfg := o.Config
	if cfg == nil {
		cfg = config.Default()
	}

	searchInput, err := answer(ctx, o, flags.search, cfg.SearchInput(),
		`🎨 Which color(s) do you want to search for? (e.g. "purple", "#800080", "pink,rose"):`, "")
	if err != nil {
		return err
	}

	target, err := color.NewTargetSpec(searchInput)
	if err != nil {
		return err
	}

	replaceInput, err := answer(ctx, o, flags.replace, cfg.Replace,
		`🌈 What color do you want to replace them with? (e.g. "red", "#FF0000"):`, config.DefaultReplace)
	if err != nil {
		return err
	}
	if strings.TrimSpace(replaceInput) == "" {
		replaceInput = config.DefaultReplace
	}
	replacement := color.NewReplacementSpec(replaceInput)

	if replacement.Fallback {
		logger.Warningf("Replacement color %q was not recognized as a valid name or hex. Using %s (red) by default.",
			replaceInput, replacement.Hex)
	}
	if target.Approximate {
		logger.Warningf("The first search color %q was not recognized as a valid name or hex. Hex and numeric detection will use %s.",
			target.Tokens[0], target.RGB.Hex())
	}

	rootInput, err := answer(ctx, o, flags.root, cfg.Root,
		"📁 Enter the path of the folder to scan:", "")
	if err != nil {
		return err
	}

	outputName := flags.outputName
	if outputName == "" {
		outputName = cfg.OutputName
	}

	root, output, err := operation.ResolveRoot(strings.TrimSpace(rootInput), outputName)
	if err != nil {
		return err
	}

	statusMgr := status.New(output)

	logger.Header("recoloring " + root)
	logger.Swatches(target.RGB.Hex(), target.String(), replacement.Hex, replacement.Name)
	logger.StartRun(ctx, log.RunOperation{
		Root:    root,
		Output:  output,
		Search:  searchInput,
		Replace: replaceInput,
	})

	op := operation.NewRecolorOperation(operation.Options{
		Root:        root,
		Output:      output,
		Extensions:  cfg.Extensions,
		Ignore:      cfg.Ignore,
		Target:      target,
		Replacement: replacement,
		Prompter:    o.Prompter,
		Logger:      logger,
	}, statusMgr)

	runErr := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
	logger.EndRun(ctx)
	if runErr != nil {
		return runErr
	}

	logger.LogNewline()
	logger.Info(statusMgr.Formatter().FormatSummary(statusMgr.Summary(ctx)))
	logger.Success("Mission accomplished! All detections have been processed.")
	logger.Successf("Modified resources are located in: %s", output)
	logger.Warning("Carefully check the modified files before using them.")
	return nil
}

// answer returns the flag value, then the config value, and only prompts when both are empty.
func answer(ctx context.Context, o *opts.RootOpts, flagValue, configValue, message, defaultValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if configValue != "" {
		return configValue, nil
	}
	if o.Prompter == nil {
		return defaultValue, nil
	}
	v, err := o.Prompter.Input(ctx, message, defaultValue)
	if err != nil {
		return "", errors.Errorf("asking %q: %w", message, err)
	}
	return v, nil
}
