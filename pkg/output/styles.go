package output

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	rootColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	dimColor  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
)

// styles are bound to a renderer so color detection follows the writer
type styles struct {
	Marker lipgloss.Style
	Path   lipgloss.Style
	Root   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Marker: r.NewStyle().Bold(true).Foreground(rootColor),
		Path:   r.NewStyle(),
		Root:   r.NewStyle().Faint(true).Foreground(dimColor),
	}
}
