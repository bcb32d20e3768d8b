package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	assert.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("hello world"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.False(t, info.IsDir())

	names, err := fsys.ReadDirNames(tmpDir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"test.txt", "sub"}, names)

	_, err = fsys.Stat(filepath.Join(tmpDir, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestOSLstatDoesNotFollowLinks(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "real")
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.Symlink(target, link))

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
	assert.False(t, info.IsDir())

	info, err = fsys.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOSReadDirNamesFailsOnFile(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "plain")
	require.NoError(t, os.WriteFile(testFile, nil, 0644))

	_, err := fsys.ReadDirNames(testFile)
	assert.Error(t, err)
}

func TestAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/data/b", 0755))
	require.NoError(t, afero.WriteFile(mem, "/data/a.txt", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/data/c.txt", []byte("c"), 0644))

	fsys := NewAferoFS(mem)

	info, err := fsys.Stat("/data/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = fsys.Lstat("/data/a.txt")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	names, err := fsys.ReadDirNames("/data")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b", "c.txt"}, names)

	_, err = fsys.ReadDirNames("/missing")
	assert.Error(t, err)
}

func TestAferoFSOverOsFsLstat(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real")
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.Symlink(target, link))

	fsys := NewAferoFS(afero.NewOsFs())

	info, err := fsys.Lstat(link)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	info, err = fsys.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestIOFS(t *testing.T) {
	fsys := NewIOFS(fstest.MapFS{
		"a.md":       {Data: []byte("a")},
		"sub/b.md":   {Data: []byte("b")},
		"sub/c.txt":  {Data: []byte("c")},
		"sub/d/e.md": {Data: []byte("e")},
	})

	info, err := fsys.Stat("/")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = fsys.Lstat("/sub/b.md")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	names, err := fsys.ReadDirNames("/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.md", "sub"}, names)

	names, err = fsys.ReadDirNames("/sub/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b.md", "c.txt", "d"}, names)

	_, err = fsys.Stat("/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestIOName(t *testing.T) {
	assert.Equal(t, ".", ioName("/"))
	assert.Equal(t, ".", ioName(""))
	assert.Equal(t, "a/b", ioName("/a/b"))
	assert.Equal(t, "a", ioName("//a/"))
}
