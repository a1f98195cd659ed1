package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDoctorCmd builds the doctor command, which verifies the external tools
// a generation run depends on.
func newDoctorCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that required external tools are installed",
		Long: `Check that the external tools bloatjpg shells out to are installed and
report their versions. Currently that is exiftool, which stamps the EXIF
capture timestamps into each finished batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, o)
		},
	}
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, o *rootOptions) error {
	log := newLogger(o.verbose, o.quiet)

	ver, err := o.tagger(log.Named("exif")).Version(cmd.Context())
	if err != nil {
		return fmt.Errorf("exiftool check failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exiftool %s\n", ver)
	return nil
}
