package models

import "fmt"

// CategoryKind identifies one of the three fixed taxonomies a category
// can belong to.
type CategoryKind string

const (
	KindSegment  CategoryKind = "segment"
	KindLanguage CategoryKind = "language"
	KindPlatform CategoryKind = "platform"
)

// ParseCategoryKind maps user input to a CategoryKind.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch s {
	case "segment", "segments":
		return KindSegment, nil
	case "language", "languages", "technology":
		return KindLanguage, nil
	case "platform", "platforms":
		return KindPlatform, nil
	}
	return "", fmt.Errorf("unknown category kind %q (want segment, language, or platform)", s)
}

// Category is a named tag under one taxonomy, shared across projects.
type Category struct {
	ID   int
	Name string
}

// Menu holds the three taxonomy lists shown in the filter menus.
type Menu struct {
	Segments  []Category
	Languages []Category
	Platforms []Category
}

// ByKind returns the menu list for one taxonomy.
func (m *Menu) ByKind(kind CategoryKind) []Category {
	switch kind {
	case KindSegment:
		return m.Segments
	case KindLanguage:
		return m.Languages
	case KindPlatform:
		return m.Platforms
	}
	return nil
}
