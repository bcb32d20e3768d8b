package topics

import (
	"github.com/arthur-debert/fileset/pkg/logging"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through untouched.
type GlamourRenderer struct {
	// Style is "auto", a standard style name such as "dark" or "notty",
	// or a path to a JSON style file
	Style string

	// Width wraps output, 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a markdown renderer with auto-detected style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output, falling back to the raw
// content when glamour fails
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch _, standard := styles.DefaultStyles[r.Style]; {
	case r.Style == "" || r.Style == "auto":
		options = append(options, glamour.WithAutoStyle())
	case standard:
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	logger := logging.GetLogger("topics")

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain topic")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain topic")
		return content
	}
	return rendered
}
