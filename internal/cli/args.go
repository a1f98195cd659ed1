package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/krudnicki-kuhy/bloatjpg/internal/batch"
	"github.com/krudnicki-kuhy/bloatjpg/internal/colour"
)

// Positional defaults, mirroring the classic invocation: one maximal-quality
// 1000px image of 25px blocks.
const (
	defaultCount   = 1
	defaultSide    = 1000
	defaultBlock   = 25
	defaultQuality = 100
	defaultOutput  = "output.png"
)

// Capture date bounds. The day bound is a flat 1-31 regardless of month;
// tokens like 20240231 pass and take whatever time.Date normalises them to.
const (
	minYear = 1900
	maxYear = 2100
)

// resolveSpec turns the positional arguments into a batch spec. Positionals
// are strictly ordered and all optional: count, size, block size, quality,
// output path, then an optional YYYYMMDD capture date, then palette colours.
// Flag-supplied colours are appended after the positional ones; when neither
// source supplies any, the stock black-and-white palette applies.
func resolveSpec(args []string, flagColours colour.Palette, start time.Time, log hclog.Logger) (batch.Spec, error) {
	spec := batch.Spec{
		Count:      defaultCount,
		Side:       defaultSide,
		Block:      defaultBlock,
		Quality:    defaultQuality,
		OutputPath: defaultOutput,
		Start:      start,
		Capture:    start,
	}

	var err error
	if len(args) > 0 {
		if spec.Count, err = strconv.Atoi(args[0]); err != nil {
			return batch.Spec{}, fmt.Errorf("invalid image count '%s': %w", args[0], err)
		}
	}
	if len(args) > 1 {
		if spec.Side, err = strconv.Atoi(args[1]); err != nil {
			return batch.Spec{}, fmt.Errorf("invalid size '%s': %w", args[1], err)
		}
	}
	if len(args) > 2 {
		if spec.Block, err = strconv.Atoi(args[2]); err != nil {
			return batch.Spec{}, fmt.Errorf("invalid block size '%s': %w", args[2], err)
		}
	}
	if len(args) > 3 {
		if spec.Quality, err = strconv.Atoi(args[3]); err != nil {
			return batch.Spec{}, fmt.Errorf("invalid quality '%s': %w", args[3], err)
		}
	}
	if len(args) > 4 {
		spec.OutputPath = args[4]
	}

	var tokens []string
	if len(args) > 5 {
		tokens = args[5:]
		if isDateToken(tokens[0]) {
			if capture, ok := captureDate(tokens[0]); ok {
				spec.Capture = capture
			} else {
				log.Warn("invalid capture date, using current time", "token", tokens[0])
			}
			tokens = tokens[1:]
		}
	}

	pal, err := colour.Parse(tokens)
	if err != nil {
		return batch.Spec{}, err
	}
	pal = append(pal, flagColours...)
	if len(pal) == 0 {
		pal = colour.Default()
	}
	spec.Palette = pal

	return spec, nil
}

// isDateToken reports whether tok has the 8-digit YYYYMMDD shape. Anything
// else in the date slot is treated as the start of the colour list.
func isDateToken(tok string) bool {
	if len(tok) != 8 {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// captureDate converts an 8-digit YYYYMMDD token into that date at noon
// local time. Tokens with a year outside [1900, 2100], a month outside
// [1, 12] or a day outside [1, 31] are invalid and the capture timestamp
// falls back to the run's start time.
func captureDate(tok string) (time.Time, bool) {
	year, _ := strconv.Atoi(tok[0:4])
	month, _ := strconv.Atoi(tok[4:6])
	day, _ := strconv.Atoi(tok[6:8])

	if year < minYear || year > maxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local), true
}

// colourList implements pflag.Value for the repeatable --colour flag. Each
// occurrence is parsed eagerly so a malformed colour fails at flag-parse
// time with the offending token in the message.
type colourList struct {
	palette *colour.Palette
}

func (c *colourList) String() string {
	if c.palette == nil || len(*c.palette) == 0 {
		return ""
	}
	return strings.Join(c.palette.Hexes(), ",")
}

func (c *colourList) Set(value string) error {
	rgb, err := colour.ParseHex(value)
	if err != nil {
		return fmt.Errorf("invalid hex colour '%s': %w", value, err)
	}
	*c.palette = append(*c.palette, rgb)
	return nil
}

func (c *colourList) Type() string {
	return "#RRGGBB"
}
