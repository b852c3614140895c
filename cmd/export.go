package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joescharf/folio/internal/models"
	"github.com/joescharf/folio/internal/output"
)

var (
	exportFormat   string
	exportSegment  int
	exportPlatform int
	exportLanguage int
)

// exportBatchSize keeps the page walk short without asking the API for
// everything at once.
const exportBatchSize = 50

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export projects as JSON, CSV, or Markdown",
	Long:  "Fetch every project page matching the filters and write them to stdout in the chosen format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportRun()
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, csv, markdown")
	exportCmd.Flags().IntVar(&exportSegment, "segment", 0, "Filter by business segment id")
	exportCmd.Flags().IntVar(&exportPlatform, "platform", 0, "Filter by platform id")
	exportCmd.Flags().IntVar(&exportLanguage, "language", 0, "Filter by technology id")
	rootCmd.AddCommand(exportCmd)
}

func exportRun() error {
	c, err := getClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	filter := models.Filter{
		SegmentID:  exportSegment,
		PlatformID: exportPlatform,
		LanguageID: exportLanguage,
	}

	var projects []models.Project
	for page := 1; ; page++ {
		res, err := c.Projects(ctx, page, exportBatchSize, filter)
		if err != nil {
			return fmt.Errorf("fetch page %d: %w", page, err)
		}
		projects = append(projects, res.Items...)
		if page >= res.TotalPages(exportBatchSize) {
			break
		}
	}

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(ui.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	case "csv":
		w := csv.NewWriter(ui.Out)
		w.Write([]string{"ID", "Title", "Link", "Segments", "Platforms", "Languages", "Images"})
		for _, p := range projects {
			w.Write([]string{
				strconv.Itoa(p.ID),
				p.Title,
				p.Link,
				output.TagList(p.Segments),
				output.TagList(p.Platforms),
				output.TagList(p.Languages),
				strconv.Itoa(len(p.Images)),
			})
		}
		w.Flush()
		return w.Error()
	case "markdown":
		fmt.Fprintln(ui.Out, "# Projects")
		fmt.Fprintln(ui.Out)
		fmt.Fprintln(ui.Out, "| ID | Title | Segments | Platforms | Languages |")
		fmt.Fprintln(ui.Out, "|----|-------|----------|-----------|-----------|")
		for _, p := range projects {
			fmt.Fprintf(ui.Out, "| %d | %s | %s | %s | %s |\n",
				p.ID, p.Title,
				output.TagList(p.Segments),
				output.TagList(p.Platforms),
				output.TagList(p.Languages))
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s (use: json, csv, markdown)", exportFormat)
	}
}
