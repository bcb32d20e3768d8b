package fileset

import (
	"testing"

	"github.com/arthur-debert/fileset/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		entry    string
		want     bool
	}{
		{"no_patterns", nil, "anything", false},
		{"exact_name", []string{"CVS"}, "CVS", true},
		{"star", []string{"b*"}, "bar", true},
		{"star_no_match", []string{"b*"}, "abc", false},
		{"question_mark", []string{"?.log"}, "a.log", true},
		{"question_mark_length", []string{"?.log"}, "ab.log", false},
		{"bracket_class", []string{"[abc].txt"}, "b.txt", true},
		{"bracket_negation", []string{"[^abc].txt"}, "d.txt", true},
		{"any_pattern_matches", []string{"*.tmp", ".git"}, ".git", true},
		{"star_skips_dotfiles", []string{"*"}, ".hidden", false},
		{"dot_star_matches_dotfiles", []string{".*"}, ".hidden", true},
		{"bracket_dot_skips_dotfiles", []string{"[.]git"}, ".git", false},
		{"escaped_dot_skips_dotfiles", []string{"\\.git"}, ".git", false},
		{"malformed_pattern_never_matches", []string{"[a"}, "[a", false},
		{"case_sensitive", []string{"readme"}, "README", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fset := memoryFileset(t, testutil.FileTree{}, nil)
			fset.SetIgnore(tt.patterns...)
			assert.Equal(t, tt.want, fset.shouldIgnore(tt.entry))
		})
	}
}

func TestIgnoreOptionCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  []string
	}{
		{"single_string", "*.bak", []string{"*.bak"}},
		{"string_slice", []string{"a", "b"}, []string{"a", "b"}},
		{"interface_slice", []interface{}{"a", "b"}, []string{"a", "b"}},
		{"nil", nil, []string{}},
		{"single_nil_element", []interface{}{nil}, []string{}},
		{"integer_pattern", 42, []string{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fset := memoryFileset(t, testutil.FileTree{}, nil)
			require.NoError(t, fset.Set("ignore", tt.value))
			assert.ElementsMatch(t, tt.want, fset.Ignore())
		})
	}
}

func TestIgnoreSingleNilIgnoresNothing(t *testing.T) {
	fset := memoryFileset(t, sampleTree(), map[string]interface{}{
		"recurse": true,
		"ignore":  []interface{}{nil},
	})
	assert.Equal(t, []string{".", "a", "c", "a/b"}, files(t, fset))
}

func TestIgnoreOptionRejectsOtherTypes(t *testing.T) {
	fset := memoryFileset(t, testutil.FileTree{}, nil)
	assert.Error(t, fset.Set("ignore", true))
	assert.Error(t, fset.Set("ignore", []interface{}{"ok", false}))
}
