package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command. Version, commit, and
// date are injected at build time via ldflags.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display JioAstro version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "JioAstro v%s\n", version)
			_, _ = fmt.Fprintln(out, "Yoga catalog and dasha timing engine")
			_, _ = fmt.Fprintf(out, "  commit:  %s\n", commit)
			_, _ = fmt.Fprintf(out, "  built:   %s\n", date)
			_, _ = fmt.Fprintf(out, "  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
