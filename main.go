// inode-counter reports inode usage per directory in a filesystem subtree.
package main

import (
	"fmt"
	"os"

	"github.com/lucblassel/inode-counter/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
