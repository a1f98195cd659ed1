// Package cli provides the command-line interface for bloatjpg.
package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/krudnicki-kuhy/bloatjpg/internal/batch"
	"github.com/krudnicki-kuhy/bloatjpg/internal/colour"
	"github.com/krudnicki-kuhy/bloatjpg/internal/encode"
	"github.com/krudnicki-kuhy/bloatjpg/internal/exif"
	"github.com/krudnicki-kuhy/bloatjpg/internal/version"
)

// rootOptions carries the flag state for one root command instance. A fresh
// instance per NewRootCmd call keeps repeated executions (and tests) from
// sharing flag values.
type rootOptions struct {
	verbose bool
	quiet   bool
	seed    int64
	colours colour.Palette

	// runner overrides process execution; nil means a real exiftool child
	// process. Tests install a mock here.
	runner exif.ProcessRunner
}

// NewRootCmd builds the bloatjpg root command wired to the real JPEG
// encoder and the exiftool tagger.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(o *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bloatjpg [count] [size] [block_size] [quality] [output_path] [YYYYMMDD] [colour ...]",
		Short: "Generate batches of block-patterned JPEG test images",
		Long: `Bloatjpg mass-produces large JPEG fixtures for storage and pipeline
testing. Each image is a square grid of fixed-size blocks, every block
painted with one colour drawn at random from the palette. The batch lands
in a fresh generated_images_<date>_<time> folder and exiftool stamps EXIF
capture timestamps into the whole folder once after the last image.

Arguments (all optional, strictly ordered):
  count        number of images to generate (default 1)
  size         width and height of each image in pixels (default 1000)
  block_size   size of each colour block in pixels; must divide size (default 25)
  quality      JPEG quality passed to the encoder (default 100)
  output_path  base name echoed in diagnostics; files are always named bloated_image_<n>.jpg
  YYYYMMDD     capture date to stamp into EXIF timestamps, taken at 12:00:00
  colour       palette entries in #RRGGBB form (default #000000 #FFFFFF)

Examples:
  # One 1000x1000 image of 25px black-and-white blocks
  bloatjpg

  # Five 800x800 images with 40px blocks at quality 85
  bloatjpg 5 800 40 85

  # Two images stamped with a custom capture date
  bloatjpg 2 1000 25 100 output.png 20240101

  # Custom three-colour palette
  bloatjpg 1 512 32 90 output.png '#FF5733' '#33FF57' '#3357FF'

  # Reproducible batch via a fixed seed
  bloatjpg --seed 42 3`,
		Args:         cobra.ArbitraryArgs,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, o)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "suppress non-error output")
	registerGenerationFlags(rootCmd.Flags(), o)

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDoctorCmd(o))

	return rootCmd
}

// registerGenerationFlags binds the flags that shape a generation run.
func registerGenerationFlags(flags *pflag.FlagSet, o *rootOptions) {
	flags.Int64Var(&o.seed, "seed", 0, "random seed for reproducible batches (default: time-based)")
	flags.VarP(&colourList{palette: &o.colours}, "colour", "c", "palette colour in #RRGGBB form (repeatable, adds to positional colours)")
}

// runRoot executes one generation run: resolve the positional arguments,
// paint and encode every image, then tag the finished batch.
func runRoot(cmd *cobra.Command, args []string, o *rootOptions) error {
	log := newLogger(o.verbose, o.quiet)
	start := time.Now()

	spec, err := resolveSpec(args, o.colours, start, log)
	if err != nil {
		return err
	}

	seed := o.seed
	if !cmd.Flags().Changed("seed") {
		seed = start.UnixNano()
	}

	log.Debug("resolved run parameters",
		"count", spec.Count,
		"size", spec.Side,
		"block", spec.Block,
		"quality", spec.Quality,
		"output_path", spec.OutputPath,
		"colours", strings.Join(spec.Palette.Hexes(), ","),
		"capture", exif.FormatTimestamp(spec.Capture),
		"seed", seed)

	out := cmd.OutOrStdout()
	if o.quiet {
		out = io.Discard
	}

	runner := &batch.Runner{
		Encoder: encode.JPEG{},
		Tagger:  o.tagger(log.Named("exif")),
		Rand:    rand.New(rand.NewSource(seed)),
		Out:     out,
		Log:     log,
	}

	folder, err := runner.Run(cmd.Context(), spec)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Done: %d image(s) in %s\n", spec.Count, folder)
	return nil
}

// tagger returns the exiftool-backed tagger, honouring the process runner
// override tests install.
func (o *rootOptions) tagger(log hclog.Logger) *exif.Tool {
	if o.runner != nil {
		return exif.NewToolWithRunner(log, o.runner)
	}
	return exif.NewTool(log)
}

// newLogger builds the run logger. Debug diagnostics appear with --verbose,
// --quiet drops everything below errors, and colour only switches on when
// stderr is a real terminal.
func newLogger(verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	color := hclog.ColorOff
	if term.IsTerminal(int(os.Stderr.Fd())) {
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "bloatjpg",
		Output: os.Stderr,
		Level:  level,
		Color:  color,
	})
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
