// Package exif applies capture timestamps to generated image batches by
// shelling out to the exiftool binary.
package exif

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// exiftoolBinary is the command resolved against PATH.
const exiftoolBinary = "exiftool"

// timestampLayout is the date form exiftool expects for its date tags.
const timestampLayout = "2006:01:02 15:04:05"

// FormatTimestamp renders ts in the "YYYY:MM:DD HH:MM:SS" form exiftool
// expects.
func FormatTimestamp(ts time.Time) string {
	return ts.Format(timestampLayout)
}

// Tagger applies a capture timestamp to a folder of generated images.
type Tagger interface {
	// TagBatch stamps every JPEG under dir with capture in a single pass.
	TagBatch(ctx context.Context, dir string, capture time.Time) error
}

// Tool tags image batches by invoking exiftool once per batch.
type Tool struct {
	path   string
	runner ProcessRunner
	log    hclog.Logger
}

// NewTool returns a Tool that resolves exiftool against PATH on first use
// and executes it directly.
func NewTool(logger hclog.Logger) *Tool {
	return &Tool{
		runner: NewRealProcessRunner(),
		log:    logger,
	}
}

// NewToolWithRunner returns a Tool bound to the supplied process runner.
// The binary is not resolved against PATH; the runner sees the bare name.
func NewToolWithRunner(logger hclog.Logger, runner ProcessRunner) *Tool {
	return &Tool{
		path:   exiftoolBinary,
		runner: runner,
		log:    logger,
	}
}

// lookup resolves the exiftool binary once. Resolution is deferred to first
// use so that a missing install surfaces as a tagging failure, after the
// images are already on disk.
func (t *Tool) lookup() (string, error) {
	if t.path != "" {
		return t.path, nil
	}

	path, err := exec.LookPath(exiftoolBinary)
	if err != nil {
		return "", fmt.Errorf("exiftool not found in PATH: %w", err)
	}

	t.path = path
	return path, nil
}

// TagBatch stamps every JPEG under dir with the capture timestamp. The
// DateTimeOriginal, CreateDate and ModifyDate tags all receive the same
// value, written in place by one exiftool invocation for the whole folder.
// Files already written stay on disk when tagging fails.
func (t *Tool) TagBatch(ctx context.Context, dir string, capture time.Time) error {
	path, err := t.lookup()
	if err != nil {
		return err
	}

	stamp := FormatTimestamp(capture)
	args := []string{
		"-overwrite_original",
		"-ext", "jpg",
		"-DateTimeOriginal=" + stamp,
		"-CreateDate=" + stamp,
		"-ModifyDate=" + stamp,
		dir,
	}

	t.log.Debug("tagging image batch", "dir", dir, "timestamp", stamp)

	stdout, stderr, err := t.runner.Run(ctx, path, args, nil)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return fmt.Errorf("exiftool failed: %w: %s", err, msg)
		}
		return fmt.Errorf("exiftool failed: %w", err)
	}

	if out := strings.TrimSpace(string(stdout)); out != "" {
		t.log.Debug("exiftool finished", "output", out)
	}

	return nil
}

// Version reports the installed exiftool version.
func (t *Tool) Version(ctx context.Context) (string, error) {
	path, err := t.lookup()
	if err != nil {
		return "", err
	}

	stdout, stderr, err := t.runner.Run(ctx, path, []string{"-ver"}, nil)
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", fmt.Errorf("failed to query exiftool version: %w: %s", err, msg)
		}
		return "", fmt.Errorf("failed to query exiftool version: %w", err)
	}

	return strings.TrimSpace(string(stdout)), nil
}
