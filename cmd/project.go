package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/folio/internal/api"
	"github.com/joescharf/folio/internal/models"
	"github.com/joescharf/folio/internal/output"
)

var (
	projectPage     int
	projectPageSize int
	projectSegment  int
	projectPlatform int
	projectLanguage int

	removeYes bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "List and inspect catalog projects",
	Long:  "List, show, and remove projects in the portfolio catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectListRun()
	},
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects, paginated and filterable",
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectListRun()
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one project with all detail fields and images",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectShowRun(args[0])
	},
}

var projectRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a project from the catalog",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectRemoveRun(args[0])
	},
}

func init() {
	projectListCmd.Flags().IntVar(&projectPage, "page", 1, "Page number (starting at 1)")
	projectListCmd.Flags().IntVar(&projectPageSize, "page-size", 0, "Projects per page (default from config)")
	projectListCmd.Flags().IntVar(&projectSegment, "segment", 0, "Filter by business segment id")
	projectListCmd.Flags().IntVar(&projectPlatform, "platform", 0, "Filter by platform id")
	projectListCmd.Flags().IntVar(&projectLanguage, "language", 0, "Filter by technology id")

	projectRemoveCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip confirmation prompt")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectRemoveCmd)
	rootCmd.AddCommand(projectCmd)
}

func projectListRun() error {
	c, err := getClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	pageSize := projectPageSize
	if pageSize <= 0 {
		pageSize = viper.GetInt("page_size")
	}
	filter := models.Filter{
		SegmentID:  projectSegment,
		PlatformID: projectPlatform,
		LanguageID: projectLanguage,
	}

	page, err := c.Projects(ctx, projectPage, pageSize, filter)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	if page.TotalItems == 0 {
		ui.Info("No projects match the current filters.")
		return nil
	}

	table := ui.Table([]string{"ID", "Title", "Segments", "Platforms", "Languages", "Cover"})
	for _, p := range page.Items {
		_ = table.Append([]string{
			strconv.Itoa(p.ID),
			output.Cyan(p.Title),
			output.TagList(p.Segments),
			output.TagList(p.Platforms),
			output.TagList(p.Languages),
			output.CoverLabel(&p),
		})
	}
	_ = table.Render()

	ui.Info("page %d of %d (%d projects)", projectPage, page.TotalPages(pageSize), page.TotalItems)
	return nil
}

func projectShowRun(idArg string) error {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return fmt.Errorf("invalid project id: %s", idArg)
	}

	c, err := getClient()
	if err != nil {
		return err
	}

	p, err := c.ProjectByID(context.Background(), id)
	if err != nil {
		var nf *api.NotFoundError
		if errors.As(err, &nf) {
			return fmt.Errorf("project %d not found", id)
		}
		return fmt.Errorf("get project: %w", err)
	}

	fmt.Fprintf(ui.Out, "%s (id %d)\n\n", output.Cyan(p.Title), p.ID)
	showField("Description", p.Description)
	showField("Link", p.Link)
	showField("Technical details", p.TechnicalDetails)
	showField("Statistics", p.StatisticsResults)
	showField("Documentation", p.Documentation)
	showField("Segments", output.TagList(p.Segments))
	showField("Platforms", output.TagList(p.Platforms))
	showField("Languages", output.TagList(p.Languages))

	imgs := p.CarouselImages()
	if len(imgs) == 0 {
		fmt.Fprintln(ui.Out, "\nNo images.")
		return nil
	}
	fmt.Fprintf(ui.Out, "\nImages (%d):\n", len(imgs))
	for _, img := range imgs {
		marker := ""
		if img.IsCover {
			marker = " " + output.Green("(cover)")
		}
		fmt.Fprintf(ui.Out, "  %s%s\n", img.URL, marker)
	}
	return nil
}

func showField(label, value string) {
	if value == "" || value == "-" {
		return
	}
	fmt.Fprintf(ui.Out, "  %-19s %s\n", label+":", value)
}

func projectRemoveRun(idArg string) error {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return fmt.Errorf("invalid project id: %s", idArg)
	}

	c, err := getClient()
	if err != nil {
		return err
	}

	if dryRun {
		ui.DryRunMsg("Would delete project %d", id)
		return nil
	}

	if !removeYes && !confirm(fmt.Sprintf("Delete project %d? This is permanent", id)) {
		ui.Info("Aborted.")
		return nil
	}

	if err := c.DeleteProject(context.Background(), id); err != nil {
		var nf *api.NotFoundError
		if errors.As(err, &nf) {
			return fmt.Errorf("project %d not found", id)
		}
		return fmt.Errorf("could not delete project %d, try again: %w", id, err)
	}

	ui.Success("Deleted project %d", id)
	return nil
}

// confirm prompts for a y/N answer on stdin.
func confirm(prompt string) bool {
	fmt.Fprintf(ui.Out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
