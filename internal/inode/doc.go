// Package inode counts filesystem inodes under a directory subtree.
//
// It walks the tree with a bounded fork-join recursion, aggregates
// per-directory counts bottom-up, and renders a depth-limited tree view
// of the result. Counting is always exhaustive; the display depth only
// limits how much of the aggregated tree is printed.
package inode
