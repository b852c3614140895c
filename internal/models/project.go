package models

// Project represents a published case study in the portfolio catalog.
// Projects are created and owned by the remote service; folio only reads
// (and, for administrators, deletes) them.
type Project struct {
	ID                int
	Title             string
	Description       string
	Link              string
	TechnicalDetails  string
	StatisticsResults string
	Documentation     string
	Segments          []Category
	Platforms         []Category
	Languages         []Category
	Images            []Image
}

// CoverImage returns the image flagged as the project's thumbnail, or nil
// when no cover exists. The service does not enforce exactly one cover;
// callers fall back to a placeholder on nil.
func (p *Project) CoverImage() *Image {
	for i := range p.Images {
		if p.Images[i].IsCover {
			return &p.Images[i]
		}
	}
	return nil
}

// CarouselImages returns the images in carousel order: the cover first,
// then the remaining images in server order.
func (p *Project) CarouselImages() []Image {
	if len(p.Images) == 0 {
		return nil
	}
	out := make([]Image, 0, len(p.Images))
	if cover := p.CoverImage(); cover != nil {
		out = append(out, *cover)
	}
	for _, img := range p.Images {
		if !img.IsCover {
			out = append(out, img)
		}
	}
	return out
}

// Image represents a screenshot or photo attached to a project.
type Image struct {
	ID        int
	URL       string
	ProjectID int
	IsCover   bool
}
