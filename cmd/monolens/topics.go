package monolens

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed topics/workspaces.md
var workspacesTopic string

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print(renderMarkdown(workspacesTopic))
			return nil
		},
	}
}

// renderMarkdown renders markdown for the terminal, falling back to
// the raw text when glamour cannot set up a renderer.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
