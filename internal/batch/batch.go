// Package batch orchestrates a full generation run: geometry validation,
// folder creation, image synthesis and encoding, then one tagging pass over
// the finished folder.
package batch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/krudnicki-kuhy/bloatjpg/internal/colour"
	"github.com/krudnicki-kuhy/bloatjpg/internal/encode"
	"github.com/krudnicki-kuhy/bloatjpg/internal/exif"
	"github.com/krudnicki-kuhy/bloatjpg/internal/raster"
)

// folderLayout names the batch folder from the run's start instant.
const folderLayout = "20060102_150405"

// Spec captures one resolved generation run.
type Spec struct {
	Count      int            // number of images
	Side       int            // square image dimension in pixels
	Block      int            // square block dimension in pixels
	Quality    int            // JPEG quality, clamped by the codec
	OutputPath string         // informational base name from the command line
	Palette    colour.Palette // colours blocks are painted from
	Start      time.Time      // run start instant, names the batch folder
	Capture    time.Time      // timestamp stamped into every image
}

// Validate checks the run geometry. It runs before any raster is allocated
// or any folder or file is created, so a bad run leaves no trace on disk.
func (s Spec) Validate() error {
	if s.Count < 1 {
		return fmt.Errorf("image count must be at least 1, got %d", s.Count)
	}
	if s.Side < 1 {
		return fmt.Errorf("size must be at least 1, got %d", s.Side)
	}
	if s.Block < 1 {
		return fmt.Errorf("block size must be at least 1, got %d", s.Block)
	}
	if s.Side%s.Block != 0 {
		return fmt.Errorf("size %d is not divisible by block size %d", s.Side, s.Block)
	}
	if len(s.Palette) == 0 {
		return fmt.Errorf("palette must contain at least one colour")
	}
	return nil
}

// FolderName returns the batch folder name for a run started at t.
func FolderName(t time.Time) string {
	return "generated_images_" + t.Format(folderLayout)
}

// FileName returns the name of the i-th image in a batch, counting from 1.
// The extension is always .jpg regardless of the output path argument.
func FileName(i int) string {
	return fmt.Sprintf("bloated_image_%d.jpg", i)
}

// Runner executes generation runs. Encoder and Tagger are the injectable
// collaborators; Rand is the single source seeded at process start.
type Runner struct {
	Encoder encode.Encoder
	Tagger  exif.Tagger
	Rand    *rand.Rand

	// Dir is the parent of the batch folder; empty means the current
	// directory.
	Dir string

	Out io.Writer
	Log hclog.Logger
}

// Run executes one batch and returns the batch folder path. Images encode
// strictly in sequence; the folder is tagged once after the last image.
// Any failure aborts the run, leaving already-written files in place.
func (r *Runner) Run(ctx context.Context, spec Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	folder := filepath.Join(r.Dir, FolderName(spec.Start))
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output folder %s: %w", folder, err)
	}

	r.Log.Debug("batch started",
		"folder", folder,
		"count", spec.Count,
		"size", spec.Side,
		"block", spec.Block,
		"quality", spec.Quality,
		"colours", len(spec.Palette))

	for i := 1; i <= spec.Count; i++ {
		img := raster.Synthesize(spec.Side, spec.Block, spec.Palette, r.Rand)

		path := filepath.Join(folder, FileName(i))
		if err := r.Encoder.Encode(img, spec.Quality, path); err != nil {
			return "", fmt.Errorf("failed to write image %d of %d: %w", i, spec.Count, err)
		}

		fmt.Fprintf(r.Out, "Image %d saved to %s\n", i, path)
		r.Log.Debug("image written", "index", i, "path", path)
	}

	if err := r.Tagger.TagBatch(ctx, folder, spec.Capture); err != nil {
		return "", fmt.Errorf("failed to tag image batch: %w", err)
	}

	return folder, nil
}
