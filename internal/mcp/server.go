// Package mcp exposes the portfolio catalog as MCP tools over stdio, so
// AI assistants can browse and administer the catalog natively.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/joescharf/folio/internal/catalog"
	"github.com/joescharf/folio/internal/models"
)

// Service is the slice of the API client the MCP tools call into.
type Service interface {
	MenuCategories(ctx context.Context) (*models.Menu, error)
	Projects(ctx context.Context, pageNumber, pageSize int, filter models.Filter) (models.Page[models.Project], error)
	ProjectByID(ctx context.Context, id int) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) error
}

// Server wraps the catalog client and exposes it as MCP tools.
type Server struct {
	svc Service
}

// NewServer creates the MCP server wrapper.
func NewServer(svc Service) *Server {
	return &Server{svc: svc}
}

// MCPServer returns a configured mcp-go server with all tools registered.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer("folio", "1.0.0", server.WithToolCapabilities(true))

	srv.AddTool(s.listProjectsTool())
	srv.AddTool(s.getProjectTool())
	srv.AddTool(s.listCategoriesTool())
	srv.AddTool(s.deleteProjectTool())

	return srv
}

// ServeStdio starts the stdio transport, blocking until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := s.MCPServer()
	stdioServer := server.NewStdioServer(srv)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

// ---------------------------------------------------------------------------
// Tool definitions and handlers
// ---------------------------------------------------------------------------

type projectOut struct {
	ID                int      `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Link              string   `json:"link"`
	TechnicalDetails  string   `json:"technicalDetails,omitempty"`
	StatisticsResults string   `json:"statisticsResults,omitempty"`
	Documentation     string   `json:"documentation,omitempty"`
	Segments          []string `json:"segments"`
	Platforms         []string `json:"platforms"`
	Languages         []string `json:"languages"`
	CoverImage        string   `json:"coverImage,omitempty"`
	ImageCount        int      `json:"imageCount"`
}

func toProjectOut(p models.Project) projectOut {
	out := projectOut{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Link:              p.Link,
		TechnicalDetails:  p.TechnicalDetails,
		StatisticsResults: p.StatisticsResults,
		Documentation:     p.Documentation,
		Segments:          names(p.Segments),
		Platforms:         names(p.Platforms),
		Languages:         names(p.Languages),
		ImageCount:        len(p.Images),
	}
	if cover := p.CoverImage(); cover != nil {
		out.CoverImage = cover.URL
	}
	return out
}

func names(cs []models.Category) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

// folio_list_projects
func (s *Server) listProjectsTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("folio_list_projects",
		mcp.WithDescription("List portfolio projects, paginated and filterable. Returns a JSON object with items, totalItems, and totalPages. Filter ids come from folio_list_categories."),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("page_size", mcp.Description("Projects per page (default 6)")),
		mcp.WithNumber("segment_id", mcp.Description("Business segment id to filter by")),
		mcp.WithNumber("platform_id", mcp.Description("Platform id to filter by")),
		mcp.WithNumber("language_id", mcp.Description("Technology/language id to filter by")),
	)
	return tool, s.handleListProjects
}

func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := request.GetInt("page", 1)
	pageSize := request.GetInt("page_size", catalog.DefaultPageSize)
	filter := models.Filter{
		SegmentID:  request.GetInt("segment_id", 0),
		PlatformID: request.GetInt("platform_id", 0),
		LanguageID: request.GetInt("language_id", 0),
	}

	result, err := s.svc.Projects(ctx, page, pageSize, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list projects: %v", err)), nil
	}

	out := struct {
		Items      []projectOut `json:"items"`
		TotalItems int          `json:"totalItems"`
		TotalPages int          `json:"totalPages"`
	}{
		Items:      make([]projectOut, len(result.Items)),
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages(pageSize),
	}
	for i, p := range result.Items {
		out.Items[i] = toProjectOut(p)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal projects: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// folio_get_project
func (s *Server) getProjectTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("folio_get_project",
		mcp.WithDescription("Get one project by id, including all detail fields and image URLs."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Project id")),
	)
	return tool, s.handleGetProject
}

func (s *Server) handleGetProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	p, err := s.svc.ProjectByID(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get project %d: %v", id, err)), nil
	}

	out := struct {
		projectOut
		Images []string `json:"images"`
	}{projectOut: toProjectOut(*p)}
	for _, img := range p.CarouselImages() {
		out.Images = append(out.Images, img.URL)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal project: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// folio_list_categories
func (s *Server) listCategoriesTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("folio_list_categories",
		mcp.WithDescription("List the three filter taxonomies (segments, languages, platforms) with their ids, for use with folio_list_projects."),
	)
	return tool, s.handleListCategories
}

func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	menu, err := s.svc.MenuCategories(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list categories: %v", err)), nil
	}

	type catOut struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	conv := func(cs []models.Category) []catOut {
		out := make([]catOut, len(cs))
		for i, c := range cs {
			out[i] = catOut{ID: c.ID, Name: c.Name}
		}
		return out
	}

	out := struct {
		Segments  []catOut `json:"segments"`
		Languages []catOut `json:"languages"`
		Platforms []catOut `json:"platforms"`
	}{conv(menu.Segments), conv(menu.Languages), conv(menu.Platforms)}

	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal categories: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// folio_delete_project
func (s *Server) deleteProjectTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("folio_delete_project",
		mcp.WithDescription("Delete a project from the catalog. This is permanent and requires the configured API token."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Project id")),
	)
	return tool, s.handleDeleteProject
}

func (s *Server) handleDeleteProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	if err := s.svc.DeleteProject(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not delete project %d: %v", id, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("project %d deleted", id)), nil
}
