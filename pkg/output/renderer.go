package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fileset/pkg/errors"
	"github.com/arthur-debert/fileset/pkg/fileset"
	"github.com/arthur-debert/fileset/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/btree"
	"gopkg.in/yaml.v3"
)

// FilesDocument is the structured form of a single fileset listing
type FilesDocument struct {
	Root  string   `yaml:"root" toml:"root"`
	Files []string `yaml:"files" toml:"files"`
}

// MergeEntry pairs a relative path with the root that supplied it
type MergeEntry struct {
	Path string `yaml:"path" toml:"path"`
	Root string `yaml:"root" toml:"root"`
}

// MergeDocument is the structured form of a merge result
type MergeDocument struct {
	Entries []MergeEntry `yaml:"entries" toml:"entries"`
}

// Renderer writes results to a writer in the selected format
type Renderer struct {
	writer  io.Writer
	format  Format
	noColor bool
	styles  styles
}

// NewRenderer creates a renderer for w. With ColorAuto the lipgloss
// renderer inspects w and falls back to plain text when it is not a
// terminal or NO_COLOR is set.
func NewRenderer(w io.Writer, format Format, color ColorMode) *Renderer {
	log := logging.GetLogger("output")

	renderer := lipgloss.NewRenderer(w)
	switch color {
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	}

	noColor := renderer.ColorProfile() == termenv.Ascii
	log.Debug().
		Str("format", string(format)).
		Str("color", string(color)).
		Bool("noColor", noColor).
		Msg("Creating renderer")

	return &Renderer{
		writer:  w,
		format:  format,
		noColor: noColor,
		styles:  newStyles(renderer),
	}
}

// RenderFiles writes the listing of one fileset rooted at root
func (r *Renderer) RenderFiles(root string, files []string) error {
	switch r.format {
	case FormatYAML:
		return r.encodeYAML(FilesDocument{Root: root, Files: files})
	case FormatTOML:
		return r.encodeTOML(FilesDocument{Root: root, Files: files})
	}

	for _, file := range files {
		if _, err := fmt.Fprintln(r.writer, r.stylePath(file)); err != nil {
			return err
		}
	}
	return nil
}

// RenderMerge writes a merge result sorted by relative path
func (r *Renderer) RenderMerge(merged map[string]string) error {
	entries := sortedEntries(merged)

	switch r.format {
	case FormatYAML:
		return r.encodeYAML(MergeDocument{Entries: entries})
	case FormatTOML:
		return r.encodeTOML(MergeDocument{Entries: entries})
	}

	for _, entry := range entries {
		line := r.stylePath(entry.Path) + "\t" + r.style(r.styles.Root, entry.Root)
		if _, err := fmt.Fprintln(r.writer, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) stylePath(path string) string {
	if path == fileset.RootMarker {
		return r.style(r.styles.Marker, path)
	}
	return r.style(r.styles.Path, path)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) encodeYAML(doc interface{}) error {
	enc := yaml.NewEncoder(r.writer)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
	}
	return enc.Close()
}

func (r *Renderer) encodeTOML(doc interface{}) error {
	if err := toml.NewEncoder(r.writer).Encode(doc); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
	}
	return nil
}

// sortedEntries orders a merge result by relative path
func sortedEntries(merged map[string]string) []MergeEntry {
	ordered := btree.NewMap[string, string](0)
	for path, root := range merged {
		ordered.Set(path, root)
	}

	entries := make([]MergeEntry, 0, ordered.Len())
	ordered.Scan(func(path, root string) bool {
		entries = append(entries, MergeEntry{Path: path, Root: root})
		return true
	})
	return entries
}
