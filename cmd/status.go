package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/folio/internal/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog API status",
	Long: `Check that the configured catalog API is reachable and summarize
what it holds: total projects and the size of each filter taxonomy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusRun()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusRun() error {
	c, err := getClient()
	if err != nil {
		return err
	}
	ctx := context.Background()
	baseURL := viper.GetString("url_api")

	start := time.Now()
	menu, err := c.MenuCategories(ctx)
	if err != nil {
		ui.Error("API unreachable at %s: %v", baseURL, err)
		return err
	}
	latency := time.Since(start)

	// One item is enough; only the total matters here.
	page, err := c.Projects(ctx, 1, 1, models.Filter{})
	if err != nil {
		ui.Error("project listing failed: %v", err)
		return err
	}

	table := ui.Table([]string{"Resource", "Count"})
	_ = table.Append([]string{"Projects", strconv.Itoa(page.TotalItems)})
	_ = table.Append([]string{"Segments", strconv.Itoa(len(menu.Segments))})
	_ = table.Append([]string{"Platforms", strconv.Itoa(len(menu.Platforms))})
	_ = table.Append([]string{"Languages", strconv.Itoa(len(menu.Languages))})
	_ = table.Render()

	fmt.Fprintln(ui.Out)
	ui.Success("API healthy at %s (%s)", baseURL, latency.Round(time.Millisecond))
	return nil
}
