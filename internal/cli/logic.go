package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/lucblassel/inode-counter/internal/inode"
)

func run(root string, opts flags) error {
	level := zerolog.WarnLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)

	walker := inode.NewWalker(inode.Options{ShowHidden: opts.showHidden}, log)

	// Child context so the progress reporter stops with us.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enableProgress := !opts.debug && isatty.IsTerminal(os.Stderr.Fd())

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		inode.StartProgressReporter(ctx, walker, func(seen int64) {
			fmt.Fprintf(os.Stderr, "\r\033[2KCounting… %s inodes\r", humanize.Comma(seen))
		}, 0)
	}

	tree, err := walker.Walk(root)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	color := !opts.ignoreColors && isatty.IsTerminal(os.Stdout.Fd())

	return inode.Render(os.Stdout, tree, inode.RenderOptions{
		MaxDepth:    opts.depth,
		ShowPercent: opts.showPercent,
		Color:       color,
	})
}
