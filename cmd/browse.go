package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/folio/internal/catalog"
	"github.com/joescharf/folio/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open the interactive catalog browser.

Arrow keys page through the listing, s/l/p open the segment, technology,
and platform filter dropdowns, and enter shows a project's detail view
with its image carousel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return browseRun()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func browseRun() error {
	c, err := getClient()
	if err != nil {
		return err
	}

	list := catalog.New(c, viper.GetInt("page_size"))
	defer list.Close()

	p := tea.NewProgram(tui.New(c, list), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser exited: %w", err)
	}
	return nil
}
