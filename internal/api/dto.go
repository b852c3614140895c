package api

import (
	"encoding/json"
	"fmt"

	"github.com/joescharf/folio/internal/models"
)

// Raw wire shapes. The service's JSON is camelCase and occasionally omits
// optional fields; mapping through these types keeps the rest of the code
// on the canonical models.

type categoryRaw struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// categoryList tolerates the two representations the service has shipped
// for a project's tags: `[{"id":1,"name":"Go"}]` and the older `["Go"]`.
// Both normalize to []models.Category so rendering never branches on shape.
type categoryList []models.Category

func (c *categoryList) UnmarshalJSON(data []byte) error {
	var objs []categoryRaw
	if err := json.Unmarshal(data, &objs); err == nil {
		out := make([]models.Category, len(objs))
		for i, o := range objs {
			out[i] = models.Category{ID: o.ID, Name: o.Name}
		}
		*c = out
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		out := make([]models.Category, len(names))
		for i, name := range names {
			out[i] = models.Category{ID: i, Name: name}
		}
		*c = out
		return nil
	}

	return fmt.Errorf("category list is neither objects nor strings: %s", truncate(string(data), 80))
}

type imageRaw struct {
	ID        int    `json:"id"`
	URLImage  string `json:"urlImage"`
	ProjectID int    `json:"projectId"`
	IsCover   bool   `json:"isCover"`
}

type projectRaw struct {
	ID                int          `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Link              string       `json:"link"`
	TechnicalDetails  string       `json:"technicalDetails"`
	StatisticsResults string       `json:"statisticsResults"`
	Documentation     string       `json:"documentation"`
	Segments          categoryList `json:"segments"`
	Platforms         categoryList `json:"platforms"`
	Languages         categoryList `json:"languages"`
	Images            []imageRaw   `json:"images"`
}

// toModel maps the wire shape to the canonical model. Missing optional
// fields come back as empty strings and empty slices, never nil, so
// callers can render without presence checks.
func (r projectRaw) toModel() models.Project {
	p := models.Project{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Link:              r.Link,
		TechnicalDetails:  r.TechnicalDetails,
		StatisticsResults: r.StatisticsResults,
		Documentation:     r.Documentation,
		Segments:          emptyIfNil([]models.Category(r.Segments)),
		Platforms:         emptyIfNil([]models.Category(r.Platforms)),
		Languages:         emptyIfNil([]models.Category(r.Languages)),
		Images:            make([]models.Image, len(r.Images)),
	}
	for i, img := range r.Images {
		p.Images[i] = models.Image{
			ID:        img.ID,
			URL:       img.URLImage,
			ProjectID: img.ProjectID,
			IsCover:   img.IsCover,
		}
	}
	return p
}

func emptyIfNil(cs []models.Category) []models.Category {
	if cs == nil {
		return []models.Category{}
	}
	return cs
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
