// Package api is the REST client for the remote portfolio catalog
// service. It owns all HTTP plumbing and normalizes the service's wire
// shapes into the canonical models; it never caches, so every call is a
// fresh round trip.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joescharf/folio/internal/models"
)

// Client talks to the catalog service at a configured base URL.
type Client struct {
	baseURL    string
	token      string // optional bearer, used for delete only
	httpClient *http.Client
}

// New creates a client for the given base URL. token may be empty; it is
// only attached to administrative requests.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// doRequest performs one request with the standard headers. withAuth
// attaches the bearer token when one is configured.
func (c *Client) doRequest(ctx context.Context, method, rawURL string, body io.Reader, withAuth bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.httpClient.Do(req)
}

// statusError drains the body into a NetworkError for a non-2xx response.
func statusError(op string, resp *http.Response) *NetworkError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &NetworkError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(b)),
	}
}

var kindPaths = map[models.CategoryKind]string{
	models.KindSegment:  "/Segments",
	models.KindLanguage: "/Languages",
	models.KindPlatform: "/Platforms",
}

// MenuCategories fetches the three taxonomy lists for the filter menus.
// The three requests run concurrently and fail as a unit: if any of them
// fails, the whole call fails and the other two are cancelled.
func (c *Client) MenuCategories(ctx context.Context) (*models.Menu, error) {
	var menu models.Menu

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		menu.Segments, err = c.categoryList(ctx, models.KindSegment)
		return err
	})
	g.Go(func() error {
		var err error
		menu.Languages, err = c.categoryList(ctx, models.KindLanguage)
		return err
	})
	g.Go(func() error {
		var err error
		menu.Platforms, err = c.categoryList(ctx, models.KindPlatform)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (c *Client) categoryList(ctx context.Context, kind models.CategoryKind) ([]models.Category, error) {
	op := "list " + string(kind) + "s"
	resp, err := c.doRequest(ctx, http.MethodGet, c.baseURL+kindPaths[kind], nil, false)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(op, resp)
	}

	var raw []categoryRaw
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ShapeError{Op: op, Detail: err.Error()}
	}

	out := make([]models.Category, len(raw))
	for i, r := range raw {
		out[i] = models.Category{ID: r.ID, Name: r.Name}
	}
	return out, nil
}

// Projects fetches one page of the filtered project listing. Filter ids
// that are zero or negative are omitted from the query entirely, meaning
// "no constraint" for that taxonomy.
func (c *Client) Projects(ctx context.Context, pageNumber, pageSize int, filter models.Filter) (models.Page[models.Project], error) {
	const op = "list projects"
	var page models.Page[models.Project]

	params := url.Values{}
	params.Set("PageNumber", strconv.Itoa(pageNumber))
	params.Set("PageSize", strconv.Itoa(pageSize))
	if filter.SegmentID > 0 {
		params.Set("SegmentId", strconv.Itoa(filter.SegmentID))
	}
	if filter.PlatformID > 0 {
		params.Set("PlatformId", strconv.Itoa(filter.PlatformID))
	}
	if filter.LanguageID > 0 {
		params.Set("LanguageId", strconv.Itoa(filter.LanguageID))
	}

	resp, err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/Projects/All?"+params.Encode(), nil, false)
	if err != nil {
		return page, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return page, statusError(op, resp)
	}

	// The envelope's items member must be a JSON array. Anything else is
	// a contract violation, reported rather than rendered as empty.
	var envelope struct {
		Items      json.RawMessage `json:"items"`
		TotalItems int             `json:"totalItems"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return page, &ShapeError{Op: op, Detail: err.Error()}
	}
	items := bytes.TrimSpace(envelope.Items)
	if len(items) == 0 || items[0] != '[' {
		return page, &ShapeError{Op: op, Detail: "items is not an array"}
	}

	var raw []projectRaw
	if err := json.Unmarshal(items, &raw); err != nil {
		return page, &ShapeError{Op: op, Detail: err.Error()}
	}

	page.TotalItems = envelope.TotalItems
	page.Items = make([]models.Project, len(raw))
	for i, r := range raw {
		page.Items[i] = r.toModel()
	}
	return page, nil
}

// ProjectByID fetches a single project with its embedded images and
// categories.
func (c *Client) ProjectByID(ctx context.Context, id int) (*models.Project, error) {
	const op = "get project"
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s/Projects/%d", c.baseURL, id), nil, false)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "project", ID: id}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(op, resp)
	}

	var raw projectRaw
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ShapeError{Op: op, Detail: err.Error()}
	}
	p := raw.toModel()
	return &p, nil
}

// DeleteProject removes a project. Any non-success response is an error;
// the returned message is suitable for showing to the user.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	const op = "delete project"
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/Projects/%d", c.baseURL, id), nil, true)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: "project", ID: id}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(op, resp)
	}
	return nil
}

// CreateCategory adds a category under the given taxonomy. An invalid
// kind is rejected before any network I/O.
func (c *Client) CreateCategory(ctx context.Context, kind models.CategoryKind, name string) (*models.Category, error) {
	op := "create " + string(kind)
	path, ok := kindPaths[kind]
	if !ok {
		return nil, fmt.Errorf("%s: unknown category kind", op)
	}

	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("%s: encode body: %w", op, err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body), false)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(op, resp)
	}

	var raw categoryRaw
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ShapeError{Op: op, Detail: err.Error()}
	}
	return &models.Category{ID: raw.ID, Name: raw.Name}, nil
}
