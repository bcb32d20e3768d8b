package fileset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/fileset/pkg/testutil"
	"github.com/arthur-debert/fileset/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree is root/a, root/a/b, root/c
func sampleTree() testutil.FileTree {
	return testutil.FileTree{
		"a": testutil.FileTree{
			"b": "",
		},
		"c": "",
	}
}

func memoryFileset(t *testing.T, tree testutil.FileTree, options map[string]interface{}) *Fileset {
	t.Helper()
	fs := testutil.NewMemoryFS(t, "/data", tree)
	fset, err := NewWithFS(fs, "/data", options)
	require.NoError(t, err)
	return fset
}

func files(t *testing.T, fset *Fileset) []string {
	t.Helper()
	result, err := fset.Files()
	require.NoError(t, err)
	return result
}

// assertBreadthFirst checks that "." comes first and depth never decreases
func assertBreadthFirst(t *testing.T, result []string) {
	t.Helper()
	require.NotEmpty(t, result)
	assert.Equal(t, ".", result[0])

	previous := 0
	for _, p := range result[1:] {
		depth := strings.Count(p, "/") + 1
		assert.GreaterOrEqual(t, depth, previous, "%s appears after a deeper entry in %v", p, result)
		previous = depth
	}
}

func TestFilesWithoutRecursion(t *testing.T) {
	fset := memoryFileset(t, sampleTree(), nil)
	assert.Equal(t, []string{"."}, files(t, fset))

	fset = memoryFileset(t, sampleTree(), map[string]interface{}{"recurse": false, "recurselimit": 5})
	assert.Equal(t, []string{"."}, files(t, fset))
}

func TestFilesUnboundedRecursion(t *testing.T) {
	fset := memoryFileset(t, sampleTree(), map[string]interface{}{"recurse": true})
	assert.Equal(t, []string{".", "a", "c", "a/b"}, files(t, fset))
}

func TestFilesRecurseLimitZero(t *testing.T) {
	fset := memoryFileset(t, sampleTree(), map[string]interface{}{"recurse": true, "recurselimit": 0})
	assert.Equal(t, []string{"."}, files(t, fset))
}

func TestFilesRecurseLimitOne(t *testing.T) {
	fset := memoryFileset(t, sampleTree(), map[string]interface{}{"recurse": true, "recurselimit": 1})
	assert.Equal(t, []string{".", "a", "c"}, files(t, fset))
}

func TestFilesRecurseLimitBoundsDepth(t *testing.T) {
	tree := testutil.FileTree{
		"l1": testutil.FileTree{
			"l2": testutil.FileTree{
				"l3": testutil.FileTree{
					"l4": "",
				},
			},
		},
	}

	fset := memoryFileset(t, tree, map[string]interface{}{"recurse": true, "recurselimit": 2})
	assert.Equal(t, []string{".", "l1", "l1/l2"}, files(t, fset))

	fset = memoryFileset(t, tree, map[string]interface{}{"recurse": true, "recurselimit": "infinite"})
	assert.Equal(t, []string{".", "l1", "l1/l2", "l1/l2/l3", "l1/l2/l3/l4"}, files(t, fset))
}

func TestFilesIgnorePrunesSubtree(t *testing.T) {
	tree := testutil.FileTree{
		"a": testutil.FileTree{
			"b": testutil.FileTree{
				"deep": "",
			},
			"keep": "",
		},
		"c": "",
	}

	fset := memoryFileset(t, tree, map[string]interface{}{"recurse": true, "ignore": "b*"})
	assert.Equal(t, []string{".", "a", "c", "a/keep"}, files(t, fset))
}

func TestFilesIgnoreMatchesBaseNameOnly(t *testing.T) {
	tree := testutil.FileTree{
		"a": testutil.FileTree{
			"b": "",
		},
	}

	// a full relative path never matches
	fset := memoryFileset(t, tree, map[string]interface{}{"recurse": true, "ignore": "a/b"})
	assert.Equal(t, []string{".", "a", "a/b"}, files(t, fset))
}

func TestFilesIsIdempotent(t *testing.T) {
	fset := memoryFileset(t, sampleTree(), map[string]interface{}{"recurse": true})
	assert.Equal(t, files(t, fset), files(t, fset))
}

func TestFilesOnPlainFileRoot(t *testing.T) {
	fs := testutil.NewMemoryFS(t, "/data", testutil.FileTree{"only": "content"})
	fset, err := NewWithFS(fs, "/data/only", map[string]interface{}{"recurse": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"."}, files(t, fset))
}

func TestFilesOnDisk(t *testing.T) {
	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"a": testutil.FileTree{
			"b": testutil.FileTree{
				"x": "",
			},
			"y": "",
		},
		"c": "",
		"d": testutil.FileTree{},
	})

	fset, err := New(root, map[string]interface{}{"recurse": true})
	require.NoError(t, err)

	result := files(t, fset)
	assertBreadthFirst(t, result)
	assert.ElementsMatch(t, []string{".", "a", "c", "d", "a/b", "a/y", "a/b/x"}, result)
}

func TestSymlinkManageDoesNotExpand(t *testing.T) {
	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"real": testutil.FileTree{
			"inner": "",
		},
		"link": testutil.Symlink("real"),
	})

	fset, err := New(root, map[string]interface{}{"recurse": true, "links": "manage"})
	require.NoError(t, err)

	result := files(t, fset)
	assert.Contains(t, result, "link")
	assert.Contains(t, result, "real/inner")
	assert.NotContains(t, result, "link/inner")
}

func TestSymlinkFollowExpands(t *testing.T) {
	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"real": testutil.FileTree{
			"inner": "",
		},
		"link": testutil.Symlink("real"),
	})

	fset, err := New(root, map[string]interface{}{"recurse": true, "links": "follow"})
	require.NoError(t, err)

	result := files(t, fset)
	assertBreadthFirst(t, result)
	assert.ElementsMatch(t, []string{".", "link", "real", "link/inner", "real/inner"}, result)
}

func TestSymlinkFollowRespectsRecurseLimit(t *testing.T) {
	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"real": testutil.FileTree{
			"inner": "",
		},
		"link": testutil.Symlink("real"),
	})

	fset, err := New(root, map[string]interface{}{"recurse": true, "links": "follow", "recurselimit": 1})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".", "link", "real"}, files(t, fset))
}

func TestSymlinkCycleTerminatesUnderFollow(t *testing.T) {
	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"dir": testutil.FileTree{
			"loop": testutil.Symlink(".."),
			"self": testutil.Symlink("."),
		},
	})

	fset, err := New(root, map[string]interface{}{"recurse": true, "links": "follow"})
	require.NoError(t, err)

	result := files(t, fset)
	assert.ElementsMatch(t, []string{".", "dir", "dir/loop", "dir/self"}, result)
}

func TestSameTargetTwiceIsExpandedTwiceUnderFollow(t *testing.T) {
	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"real": testutil.FileTree{
			"inner": "",
		},
		"one": testutil.Symlink("real"),
		"two": testutil.Symlink("real"),
	})

	fset, err := New(root, map[string]interface{}{"recurse": true, "links": "follow"})
	require.NoError(t, err)

	result := files(t, fset)
	assert.Contains(t, result, "one/inner")
	assert.Contains(t, result, "two/inner")
	assert.Contains(t, result, "real/inner")
}

func TestBrokenSymlinkIsRecordedButNotFatal(t *testing.T) {
	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"dangling": testutil.Symlink("nowhere"),
		"file":     "",
	})

	for _, links := range []string{"manage", "follow"} {
		t.Run(links, func(t *testing.T) {
			fset, err := New(root, map[string]interface{}{"recurse": true, "links": links})
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{".", "dangling", "file"}, files(t, fset))
		})
	}
}

func TestUnreadableDirectoryIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}

	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"locked": testutil.FileTree{
			"secret": "",
		},
		"open": testutil.FileTree{
			"visible": "",
		},
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	fset, err := New(root, map[string]interface{}{"recurse": true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".", "locked", "open", "open/visible"}, files(t, fset))
}

func TestRootSymlinkUnderManageIsNotExpanded(t *testing.T) {
	root := testutil.NewIsolatedTree(t, testutil.FileTree{
		"real": testutil.FileTree{
			"inner": "",
		},
		"link": testutil.Symlink("real"),
	})
	link := filepath.Join(root, "link")

	fset, err := New(link, map[string]interface{}{"recurse": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"."}, files(t, fset))

	fset, err = New(link, map[string]interface{}{"recurse": true, "links": string(types.LinksFollow)})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "inner"}, files(t, fset))
}

func TestAdmit(t *testing.T) {
	fset := memoryFileset(t, testutil.FileTree{}, nil)

	assert.False(t, fset.admit(1))

	fset.SetRecurse(true)
	assert.True(t, fset.admit(100))

	require.NoError(t, fset.SetRecurseLimit(0))
	assert.False(t, fset.admit(1))

	require.NoError(t, fset.SetRecurseLimit(3))
	assert.True(t, fset.admit(3))
	assert.False(t, fset.admit(4))
}

func TestListingFailureSkipsOnlyThatDirectory(t *testing.T) {
	tree := testutil.FileTree{
		"locked": testutil.FileTree{"secret": ""},
		"open":   testutil.FileTree{"visible": ""},
	}
	fsys := testutil.NewFaultyFS(testutil.NewMemoryFS(t, "/data", tree)).
		WithError(testutil.OpReadDirNames, "/data/locked", os.ErrPermission)

	fset, err := NewWithFS(fsys, "/data", map[string]interface{}{"recurse": true})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "locked", "open", "open/visible"}, files(t, fset))
}

func TestStatFailureSkipsEntry(t *testing.T) {
	fsys := testutil.NewFaultyFS(testutil.NewMemoryFS(t, "/data", sampleTree())).
		WithError(testutil.OpLstat, "/data/a", os.ErrPermission)

	fset, err := NewWithFS(fsys, "/data", map[string]interface{}{"recurse": true})
	require.NoError(t, err)

	// a is still listed by its parent, it just can't be opened
	assert.Equal(t, []string{".", "a", "c"}, files(t, fset))
}

func TestTraversalDoesNotTouchInvisibleLevels(t *testing.T) {
	t.Run("no recursion", func(t *testing.T) {
		fsys := testutil.NewFaultyFS(testutil.NewMemoryFS(t, "/data", sampleTree()))
		fset, err := NewWithFS(fsys, "/data", nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"."}, files(t, fset))
		assert.Empty(t, fsys.Calls(testutil.OpReadDirNames))
	})

	t.Run("limit one", func(t *testing.T) {
		fsys := testutil.NewFaultyFS(testutil.NewMemoryFS(t, "/data", sampleTree()))
		fset, err := NewWithFS(fsys, "/data", map[string]interface{}{"recurse": true, "recurselimit": 1})
		require.NoError(t, err)

		assert.Equal(t, []string{".", "a", "c"}, files(t, fset))
		assert.Equal(t, []string{"/data"}, fsys.Calls(testutil.OpReadDirNames))
	})

	t.Run("follow uses stat", func(t *testing.T) {
		fsys := testutil.NewFaultyFS(testutil.NewMemoryFS(t, "/data", sampleTree()))
		fset, err := NewWithFS(fsys, "/data", map[string]interface{}{"recurse": true, "links": "follow"})
		require.NoError(t, err)

		files(t, fset)
		assert.Empty(t, fsys.Calls(testutil.OpLstat))
		assert.NotEmpty(t, fsys.Calls(testutil.OpStat))
	})
}
