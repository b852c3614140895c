package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joescharf/folio/internal/models"
	"github.com/joescharf/folio/internal/output"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage filter categories",
	Long:  "List and create the segment, platform, and technology categories used to filter projects.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return categoryListRun()
	},
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all categories across the three taxonomies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return categoryListRun()
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <kind> <name>",
	Short: "Create a category (kind: segment, platform, or language)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return categoryAddRun(args[0], args[1])
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	rootCmd.AddCommand(categoryCmd)
}

func categoryListRun() error {
	c, err := getClient()
	if err != nil {
		return err
	}

	menu, err := c.MenuCategories(context.Background())
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	table := ui.Table([]string{"Kind", "ID", "Name"})
	appendKind := func(kind models.CategoryKind, cats []models.Category) {
		for _, cat := range cats {
			_ = table.Append([]string{
				output.KindColor(kind),
				strconv.Itoa(cat.ID),
				cat.Name,
			})
		}
	}
	appendKind(models.KindSegment, menu.Segments)
	appendKind(models.KindPlatform, menu.Platforms)
	appendKind(models.KindLanguage, menu.Languages)
	_ = table.Render()
	return nil
}

func categoryAddRun(kindArg, name string) error {
	kind, err := models.ParseCategoryKind(kindArg)
	if err != nil {
		return err
	}

	c, err := getClient()
	if err != nil {
		return err
	}

	if dryRun {
		ui.DryRunMsg("Would create %s: %s", kind, name)
		return nil
	}

	cat, err := c.CreateCategory(context.Background(), kind, name)
	if err != nil {
		return fmt.Errorf("create %s: %w", kind, err)
	}

	ui.Success("Created %s %s (id %d)", kind, output.Cyan(cat.Name), cat.ID)
	return nil
}
