package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/fileset/cmd/fileset"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := fileset.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := lipgloss.NewRenderer(os.Stderr).NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
