package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joescharf/folio/internal/models"
)

func TestMenuCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Segments":
			w.Write([]byte(`[{"id":1,"name":"Fintech"},{"id":2,"name":"Health"}]`))
		case "/Languages":
			w.Write([]byte(`[{"id":10,"name":"Go"}]`))
		case "/Platforms":
			w.Write([]byte(`[{"id":20,"name":"Web"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	menu, err := c.MenuCategories(context.Background())
	require.NoError(t, err)

	assert.Len(t, menu.Segments, 2)
	assert.Equal(t, "Go", menu.Languages[0].Name)
	assert.Equal(t, []models.Category{{ID: 20, Name: "Web"}}, menu.Platforms)
	assert.Equal(t, menu.Segments, menu.ByKind(models.KindSegment))
}

func TestMenuCategories_FailsAsUnit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Languages" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	menu, err := c.MenuCategories(context.Background())
	assert.Nil(t, menu)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
}

func TestProjects_QueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Projects/All", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"items":[],"totalItems":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")

	// Only positive filter ids become query constraints.
	_, err := c.Projects(context.Background(), 2, 6, models.Filter{PlatformID: 7, SegmentID: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, gotQuery["PageNumber"])
	assert.Equal(t, []string{"6"}, gotQuery["PageSize"])
	assert.Equal(t, []string{"7"}, gotQuery["PlatformId"])
	assert.Equal(t, []string{"3"}, gotQuery["SegmentId"])
	assert.NotContains(t, gotQuery, "LanguageId")

	_, err = c.Projects(context.Background(), 1, 6, models.Filter{SegmentID: -1})
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "SegmentId")
	assert.NotContains(t, gotQuery, "PlatformId")
}

func TestProjects_Envelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":1,"title":"Alpha","languages":[{"id":10,"name":"Go"}]}],"totalItems":13}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	page, err := c.Projects(context.Background(), 1, 6, models.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 13, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages(6))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Alpha", page.Items[0].Title)
	// Omitted fields are normalized, never absent.
	assert.Equal(t, "", page.Items[0].Documentation)
	assert.NotNil(t, page.Items[0].Segments)
	assert.Empty(t, page.Items[0].Segments)
}

func TestProjects_ShapeError(t *testing.T) {
	cases := map[string]string{
		"items missing":        `{"totalItems":5}`,
		"items not array":      `{"items":{"id":1},"totalItems":5}`,
		"items null":           `{"items":null,"totalItems":5}`,
		"body not an envelope": `[1,2,3]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			c := New(srv.URL, "")
			_, err := c.Projects(context.Background(), 1, 6, models.Filter{})

			var shapeErr *ShapeError
			assert.ErrorAs(t, err, &shapeErr)
		})
	}
}

func TestProjectByID_Normalization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Projects/42", r.URL.Path)
		// documentation, statisticsResults, platforms, and images omitted.
		w.Write([]byte(`{"id":42,"title":"Beta","description":"d","link":"https://x","segments":[{"id":3,"name":"Retail"}],"languages":["TypeScript","Go"]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	p, err := c.ProjectByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 42, p.ID)
	assert.Equal(t, "", p.Documentation)
	assert.Equal(t, "", p.StatisticsResults)
	assert.NotNil(t, p.Platforms)
	assert.Empty(t, p.Platforms)
	assert.Empty(t, p.Images)

	// Legacy string tags normalize to canonical categories.
	require.Len(t, p.Languages, 2)
	assert.Equal(t, "TypeScript", p.Languages[0].Name)
	assert.Equal(t, "Go", p.Languages[1].Name)
}

func TestProjectByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.ProjectByID(context.Background(), 999)

	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, 999, nfErr.ID)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteProject(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "sekrit")
	require.NoError(t, c.DeleteProject(context.Background(), 7))
	assert.Equal(t, "Bearer sekrit", gotAuth)
}

func TestDeleteProject_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	err := c.DeleteProject(context.Background(), 7)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusForbidden, netErr.StatusCode)
	assert.Contains(t, netErr.Body, "nope")
}

func TestDeleteProject_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	err := c.DeleteProject(context.Background(), 12345)

	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestCreateCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/Platforms", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Mobile", body["name"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":21,"name":"Mobile"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	cat, err := c.CreateCategory(context.Background(), models.KindPlatform, "Mobile")
	require.NoError(t, err)
	assert.Equal(t, &models.Category{ID: 21, Name: "Mobile"}, cat)
}

func TestCreateCategory_InvalidKind(t *testing.T) {
	// Invalid kinds fail before any network I/O; no server needed.
	c := New("http://127.0.0.1:0", "")
	_, err := c.CreateCategory(context.Background(), models.CategoryKind("genre"), "Jazz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category kind")
}

func TestCategoryList_Polymorphic(t *testing.T) {
	var fromObjects categoryList
	require.NoError(t, json.Unmarshal([]byte(`[{"id":5,"name":"Go"}]`), &fromObjects))
	assert.Equal(t, categoryList{{ID: 5, Name: "Go"}}, fromObjects)

	var fromStrings categoryList
	require.NoError(t, json.Unmarshal([]byte(`["Go","Rust"]`), &fromStrings))
	require.Len(t, fromStrings, 2)
	assert.Equal(t, "Rust", fromStrings[1].Name)

	var bad categoryList
	assert.Error(t, json.Unmarshal([]byte(`[17]`), &bad))
}
