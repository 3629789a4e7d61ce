package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/madsen/postscript-graph/pkg/ps"
)

// papersCommand creates the paper-size listing command.
func (c *CLI) papersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "papers",
		Short: "List the supported paper sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			nameStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
			for _, size := range ps.PaperSizes() {
				dims := fmt.Sprintf("%.0f x %.0f pt", size.Width, size.Height)
				fmt.Println(nameStyle.Render(size.Name) + " " + StyleValue.Render(dims))
			}
			return nil
		},
	}
}
