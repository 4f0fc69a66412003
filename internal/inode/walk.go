package inode

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"golang.org/x/sync/semaphore"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Walker runs bounded fork-join walks over directory trees.
type Walker struct {
	showHidden bool
	sem        *semaphore.Weighted
	log        zerolog.Logger

	// seen tracks inodes counted so far, for progress reporting only.
	// Domain counts never touch it.
	seen atomic.Int64
}

// NewWalker creates a walker for the given options. Directory listings
// run on at most opts.Workers goroutines; the default is tuned for
// I/O-bound traversal.
func NewWalker(opts Options, log zerolog.Logger) *Walker {
	workers := opts.Workers
	if workers <= 0 {
		workers = fastwalk.DefaultNumWorkers()
	}

	return &Walker{
		showHidden: opts.ShowHidden,
		sem:        semaphore.NewWeighted(int64(workers)),
		log:        log,
	}
}

// Seen returns the number of inodes counted so far. It is safe to call
// while a walk is in progress.
func (w *Walker) Seen() int64 { return w.seen.Load() }

// Walk counts the subtree rooted at root and returns its fully
// aggregated tree. Only a root that cannot be resolved to a directory is
// an error; every inner failure degrades to an unreadable node or a
// skipped entry so the walk always produces a best-effort result.
func (w *Walker) Walk(root string) (*TreeNode, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}

	return w.walk(root, filepath.Base(root), 0), nil
}

// walk visits one directory and returns its aggregated node. The node is
// exclusively owned by the caller; no other goroutine holds a reference
// to it, so no locking is needed on any count.
func (w *Walker) walk(path, name string, depth int) *TreeNode {
	node := &TreeNode{Name: name, Depth: depth, OwnCount: 1, Readable: true}

	entries, err := os.ReadDir(path)
	if err != nil {
		w.log.Warn().Str("path", path).Err(err).Msg("cannot list directory")
		node.Readable = false
		node.TotalCount = node.OwnCount
		w.seen.Add(int64(node.OwnCount))

		return node
	}

	var dirs []fs.DirEntry

	for _, entry := range entries {
		switch Classify(entry, w.showHidden) {
		case ClassFile:
			node.OwnCount++
		case ClassDir:
			dirs = append(dirs, entry)
		case ClassHidden:
			w.log.Debug().Str("path", filepath.Join(path, entry.Name())).Msg("skipping hidden entry")
		case ClassInaccessible:
			w.log.Warn().Str("path", filepath.Join(path, entry.Name())).Msg("skipping unreadable entry")
		}
	}

	// ReadDir returns entries sorted by name and every child walk writes
	// only its own slot, so child order never depends on scheduling.
	node.Children = make([]*TreeNode, len(dirs))

	var wg conc.WaitGroup

	for i, dir := range dirs {
		i, dir := i, dir
		childPath := filepath.Join(path, dir.Name())

		if w.sem.TryAcquire(1) {
			wg.Go(func() {
				defer w.sem.Release(1)

				node.Children[i] = w.walk(childPath, dir.Name(), depth+1)
			})
		} else {
			// No worker free: recurse on this goroutine instead of
			// blocking on the semaphore, which keeps the fork-join
			// free of deadlocks.
			node.Children[i] = w.walk(childPath, dir.Name(), depth+1)
		}
	}

	wg.Wait()

	node.TotalCount = node.OwnCount
	for _, child := range node.Children {
		node.TotalCount += child.TotalCount
	}

	w.seen.Add(int64(node.OwnCount))

	return node
}

// StartProgressReporter invokes hook with the number of inodes seen so
// far on each tick until ctx is done.
func StartProgressReporter(ctx context.Context, walker *Walker, hook func(seen int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(walker.Seen())
			case <-ctx.Done():
				return
			}
		}
	}()
}
