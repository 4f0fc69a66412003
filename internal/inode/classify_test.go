package inode

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEntry is a minimal fs.DirEntry for cases the real filesystem
// cannot produce on demand, like entries whose metadata cannot be read.
type fakeEntry struct {
	name    string
	mode    fs.FileMode
	infoErr error
}

func (f fakeEntry) Name() string               { return f.name }
func (f fakeEntry) IsDir() bool                { return f.mode.IsDir() }
func (f fakeEntry) Type() fs.FileMode          { return f.mode.Type() }
func (f fakeEntry) Info() (fs.FileInfo, error) { return nil, f.infoErr }

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.True(t, IsHidden(".hidden_file"))
	assert.False(t, IsHidden("."))
	assert.False(t, IsHidden("visible"))
	assert.False(t, IsHidden("trailing."))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		entry      fakeEntry
		showHidden bool
		want       Class
	}{
		{
			name:  "regular file",
			entry: fakeEntry{name: "notes.txt"},
			want:  ClassFile,
		},
		{
			name:  "directory",
			entry: fakeEntry{name: "src", mode: fs.ModeDir},
			want:  ClassDir,
		},
		{
			name:  "symlink is a leaf even if it targets a directory",
			entry: fakeEntry{name: "link", mode: fs.ModeSymlink},
			want:  ClassFile,
		},
		{
			name:  "named pipe counts as a file",
			entry: fakeEntry{name: "fifo", mode: fs.ModeNamedPipe},
			want:  ClassFile,
		},
		{
			name:  "hidden file",
			entry: fakeEntry{name: ".env"},
			want:  ClassHidden,
		},
		{
			name:  "hidden directory",
			entry: fakeEntry{name: ".git", mode: fs.ModeDir},
			want:  ClassHidden,
		},
		{
			name:       "hidden file reclassified when shown",
			entry:      fakeEntry{name: ".env"},
			showHidden: true,
			want:       ClassFile,
		},
		{
			name:       "hidden directory reclassified when shown",
			entry:      fakeEntry{name: ".git", mode: fs.ModeDir},
			showHidden: true,
			want:       ClassDir,
		},
		{
			name:  "untyped entry resolved by stat fails closed",
			entry: fakeEntry{name: "ghost", mode: fs.ModeIrregular, infoErr: errors.New("stat: no such file")},
			want:  ClassInaccessible,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.entry, tc.showHidden))
		})
	}
}

func TestClassifyRealEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, ClassFile, Classify(entries[0], false))
	assert.Equal(t, ClassDir, Classify(entries[1], false))
}
