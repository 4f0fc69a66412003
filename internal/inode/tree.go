package inode

// TreeNode is one directory of the counted subtree. A node is built once
// by the walk that created it, handed to its parent at the join point,
// and never mutated afterwards.
type TreeNode struct {
	// Name is the directory's base name.
	Name string
	// Depth is the distance from the walk root (0 = root).
	Depth int
	// OwnCount is the directory itself plus its direct non-directory
	// entries. Subdirectories contribute through TotalCount instead.
	OwnCount int
	// TotalCount is OwnCount plus the TotalCount of every child: the
	// number of inodes reachable under this directory, each counted once.
	TotalCount int
	// Children holds the direct subdirectories, sorted by name.
	Children []*TreeNode
	// Readable is false when the directory could not be listed. Such a
	// node still counts itself, so TotalCount is 1.
	Readable bool
}

// Options configures a walk.
type Options struct {
	// ShowHidden includes dot-entries in traversal and counts.
	ShowHidden bool
	// Workers bounds the walk's parallelism (0 = automatic).
	Workers int
}
