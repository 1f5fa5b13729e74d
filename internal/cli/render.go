package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pablasso/progrow"
	"github.com/pablasso/progrow/internal/rowfile"
)

var errNoRows = errors.New("no rows to render: pass NAME=CURRENT/MAX arguments or --file (see 'progrow render --help')")

type renderOptions struct {
	width    int
	color    string
	noColor  bool
	suffix   string
	fraction bool
	percent  bool
	file     string
	verbose  bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [NAME=CURRENT/MAX ...]",
		Short: "Render progress rows",
		Long: `Render one aligned progress bar per row.

Rows are given as NAME=CURRENT/MAX arguments, read from a YAML or JSON file
with --file, or both. Settings can also come from PROGROW_WIDTH, PROGROW_COLOR,
PROGROW_NAME_SUFFIX, PROGROW_FRACTION, PROGROW_PERCENT and PROGROW_VERBOSE;
flags take precedence.`,
		Example: `  progrow render "apple harvest=23/100" "banana harvest=9/99" -f -p
  progrow render --file rows.yaml --width 60
  cat rows.json | progrow render --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.width, "width", "w", 0, "Total line width (0 uses the terminal width)")
	flags.StringVar(&opts.color, "color", string(ColorAuto), "When to color output: auto, always or never")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors (same as --color=never)")
	flags.StringVar(&opts.suffix, "suffix", progrow.DefaultNameSuffix, "Text placed after each name")
	flags.BoolVarP(&opts.fraction, "fraction", "f", false, "Show CURRENT / MAX after each bar")
	flags.BoolVarP(&opts.percent, "percent", "p", false, "Show the percentage after each bar")
	flags.StringVar(&opts.file, "file", "", "Read rows from a YAML or JSON file (- for stdin)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := opts.apply(cmd, &cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.Color.Enabled(cmd.ErrOrStderr()))

	rows, err := rowfile.ParseArgs(args)
	if err != nil {
		return err
	}
	if opts.file != "" {
		fromFile, err := rowfile.Load(opts.file, cmd.InOrStdin())
		if err != nil {
			return err
		}
		rows = append(rows, fromFile...)
	}
	if len(rows) == 0 {
		return errNoRows
	}

	logger.WithFields(logrus.Fields{
		"rows":  len(rows),
		"color": cfg.Color,
		"width": cfg.Width,
	}).Debug("loaded rows")

	style := progrow.NewStyle(
		progrow.WithColor(cfg.Color.Enabled(out)),
		progrow.WithNameSuffix(cfg.NameSuffix),
		progrow.WithFraction(cfg.Fraction),
		progrow.WithPercent(cfg.Percent),
		progrow.WithWidth(cfg.Width),
		progrow.WithTermWidth(func() int { return writerWidth(out) }),
		progrow.WithLogger(logger),
	)

	return progrow.NewRows(rows...).Fprint(out, style)
}

// apply overrides cfg with every flag set on the command line.
func (o *renderOptions) apply(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()

	if flags.Changed("width") {
		if o.width < 0 {
			return fmt.Errorf("width must not be negative, got %d", o.width)
		}
		cfg.Width = o.width
	}
	if flags.Changed("color") {
		mode, err := ParseColorMode(o.color)
		if err != nil {
			return err
		}
		cfg.Color = mode
	}
	if o.noColor {
		cfg.Color = ColorNever
	}
	if flags.Changed("suffix") {
		cfg.NameSuffix = o.suffix
	}
	if flags.Changed("fraction") {
		cfg.Fraction = o.fraction
	}
	if flags.Changed("percent") {
		cfg.Percent = o.percent
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	return nil
}
