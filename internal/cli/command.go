package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// flags collects everything parsed from the command line before it is
// split into the core's walk and render options.
type flags struct {
	depth        int
	showHidden   bool
	showPercent  bool
	ignoreColors bool
	debug        bool
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var opts flags

	cmd := &cobra.Command{
		Use:   "inode-counter [flags] <root>",
		Short: "Count inodes in a directory structure.",
		Long: heredoc.Doc(`
			inode-counter walks a directory tree and reports how many
			filesystem inodes live under each directory.

			The whole subtree is always traversed and aggregated; --depth
			only limits how many levels of the report are printed, never
			what is counted. Hidden entries (leading dot) and everything
			below them are excluded unless --show-hidden is given.
			Symbolic links count as a single inode and are never followed.
		`),
		Args:          cobra.ExactArgs(1),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if opts.depth < 0 {
				return errors.New("depth cannot be negative")
			}

			return run(args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.showHidden, "show-hidden", "s", false, "Count hidden files")
	cmd.Flags().BoolVarP(&opts.showPercent, "show-percent", "p", false, "Show percentage of total inode count for each directory")
	cmd.Flags().BoolVarP(&opts.ignoreColors, "ignore-colors", "i", false, "Do not print with colored output")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "Max depth to display counts per directory")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug output")

	// Registered up front so the shorthand is -V rather than cobra's -v.
	cmd.Flags().BoolP("version", "V", false, "Show version and exit")
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().SortFlags = false

	return cmd.Execute()
}
