package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/legiblehq/legible/internal/colour"
	"github.com/legiblehq/legible/internal/config"
)

// checkOptions holds the flag values of the check command.
type checkOptions struct {
	format  string
	mode    string
	tiers   []string
	sample  bool
	preview bool
	failOn  string
	output  string
}

// newCheckCmd builds the check command.
func newCheckCmd(cfg config.Config) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [colour]...",
		Short: "Score every ordered colour pair in a palette",
		Long: fmt.Sprintf(`Score every ordered text/background combination of the given palette.

Each colour may be a 6-digit or 3-digit hex value, with or without the
leading "#". For N colours, N×(N-1) ordered pairs are evaluated: each
colour is scored both as text and as background. Every pair receives a
WCAG 2.1 contrast ratio and an APCA lightness-contrast (Lc) score, each
classified into a compliance tier (AAA, AA, AA Large, Fail).

The palette must contain between %d and %d colours (configurable via
LEGIBLE_MIN_COLOURS and LEGIBLE_MAX_COLOURS).

Examples:
  # Check a two-colour palette
  legible check "#0f172a" "#f8fafc"

  # Shorthand and bare hex are accepted
  legible check 0f172a fff 3b82f6

  # Check the built-in sample palette with terminal previews
  legible check --sample --preview

  # Only show failing pairs, judged on the APCA scale
  legible check --sample --mode apca --tiers fail

  # Emit JSON for tooling, gate CI on AA compliance
  legible check -f json --fail-on AA "#0f172a" "#f8fafc"`, cfg.MinColours, cfg.MaxColours),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, cfg, opts)
		},
	}

	addCheckFlags(cmd.Flags(), opts)
	return cmd
}

// addCheckFlags registers the check command's flags on fs.
func addCheckFlags(fs *pflag.FlagSet, opts *checkOptions) {
	fs.StringVarP(&opts.format, "format", "f", "table", "output format (table, json, yaml)")
	fs.StringVarP(&opts.mode, "mode", "m", "wcag", "scale driving --tiers and --fail-on (wcag, apca)")
	fs.StringSliceVar(&opts.tiers, "tiers", nil, "tiers to show (AAA, AA, AA-Large, Fail; default: all)")
	fs.BoolVar(&opts.sample, "sample", false, "use the built-in sample palette")
	fs.BoolVar(&opts.preview, "preview", false, "show ANSI text-on-background previews")
	fs.StringVar(&opts.failOn, "fail-on", "", "exit non-zero when a visible pair is below this tier (AAA, AA, AA-Large)")
	fs.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string, cfg config.Config, opts *checkOptions) error {
	logger := newLogger(cmd)

	mode, err := colour.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	filter, err := parseTierFilter(opts.tiers)
	if err != nil {
		return err
	}

	bounds := colour.Bounds{Min: cfg.MinColours, Max: cfg.MaxColours}

	var palette *colour.Palette
	if opts.sample {
		if len(args) > 0 {
			return fmt.Errorf("--sample cannot be combined with explicit colours")
		}
		palette = colour.DefaultPalette(bounds)
	} else {
		if len(args) < bounds.Min || len(args) > bounds.Max {
			return fmt.Errorf("palette must contain between %d and %d colours, got %d",
				bounds.Min, bounds.Max, len(args))
		}
		palette = colour.NewPalette(bounds)
		for _, raw := range args {
			entry, err := palette.Add(raw)
			if err != nil {
				return fmt.Errorf("invalid colour %q: %w", raw, err)
			}
			logger.Debug("added colour", "id", entry.ID, "colour", entry.Colour)
		}
	}

	session := colour.NewSession(palette)
	session.SetMode(mode)
	session.SetFilter(filter)

	results := session.Results()
	visible := session.Visible()
	logger.Debug("evaluated palette",
		"colours", palette.Len(), "pairs", len(results), "visible", len(visible), "mode", mode)

	if session.EmptyFiltered() {
		fmt.Fprintf(cmd.OutOrStdout(),
			"No colour pairs match the active tier filters (%d evaluated).\n", len(results))
		return nil
	}

	output, err := formatResults(visible, mode, opts.format, opts.preview && useColour(cmd))
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("wrote output", "path", opts.output)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), output)
	}

	if opts.failOn != "" {
		threshold, err := colour.ParseTier(opts.failOn)
		if err != nil {
			return err
		}
		below := 0
		for _, r := range visible {
			if r.Tier(mode) < threshold {
				below++
			}
		}
		if below > 0 {
			return fmt.Errorf("%d visible pair(s) below %s on the %s scale", below, threshold, mode)
		}
	}

	return nil
}

// parseTierFilter converts the --tiers flag into a filter state. An
// empty flag means every tier is shown.
func parseTierFilter(labels []string) (colour.FilterState, error) {
	if len(labels) == 0 {
		return colour.NewFilterState(), nil
	}

	filter := colour.FilterState{}
	for _, label := range labels {
		tier, err := colour.ParseTier(label)
		if err != nil {
			return nil, err
		}
		filter[tier] = true
	}
	return filter, nil
}

// useColour reports whether ANSI previews should be emitted: never when
// --no-color or NO_COLOR is set, otherwise only when stdout is a
// terminal.
func useColour(cmd *cobra.Command) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
