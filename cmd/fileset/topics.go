package fileset

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/fileset/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// initTopics installs the topic-aware help command
func initTopics(rootCmd *cobra.Command) {
	source, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, source, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
