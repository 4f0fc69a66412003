package inode

import (
	"io/fs"
	"strings"
)

// Class is the walker's verdict on a single directory entry.
type Class int

const (
	// ClassFile counts as one inode and is never descended into.
	ClassFile Class = iota
	// ClassDir counts as one inode and becomes a recursive work unit.
	ClassDir
	// ClassHidden is excluded together with its entire subtree.
	ClassHidden
	// ClassInaccessible is excluded from counts entirely.
	ClassInaccessible
)

// String returns a short label for debug output.
func (c Class) String() string {
	switch c {
	case ClassFile:
		return "file"
	case ClassDir:
		return "dir"
	case ClassHidden:
		return "hidden"
	default:
		return "inaccessible"
	}
}

// IsHidden reports whether name follows the leading-dot hidden convention.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "."
}

// Classify decides how the walker treats a directory entry. Hidden names
// take precedence unless showHidden is set, in which case the entry is
// classified by its actual type like any other.
func Classify(entry fs.DirEntry, showHidden bool) Class {
	if !showHidden && IsHidden(entry.Name()) {
		return ClassHidden
	}

	switch mode := entry.Type(); {
	case mode.IsDir():
		return ClassDir
	case mode&fs.ModeSymlink != 0:
		// Links count as a single inode and are never followed, so
		// link cycles cannot occur and targets are never double-counted.
		return ClassFile
	case mode&fs.ModeIrregular != 0:
		// The listing carried no type information for this entry;
		// fall back to a stat to tell files from directories.
		info, err := entry.Info()
		if err != nil {
			return ClassInaccessible
		}

		if info.IsDir() {
			return ClassDir
		}

		return ClassFile
	default:
		return ClassFile
	}
}
