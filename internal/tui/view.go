package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joescharf/folio/internal/models"
	"github.com/joescharf/folio/internal/output"
)

const descriptionExcerpt = 120

// View renders the current page.
func (m Model) View() string {
	switch m.view {
	case viewFilter:
		return m.filterView()
	case viewDetail:
		return m.detailView()
	default:
		return m.listingView()
	}
}

func (m Model) listingView() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Projétil — project catalog"))
	b.WriteString("\n\n")

	if m.menuErr != nil {
		b.WriteString(m.styles.Error.Render("filter menus unavailable: "+m.menuErr.Error()) + "\n\n")
	}
	if f := m.snap.Filter; !f.IsZero() {
		b.WriteString(m.styles.Muted.Render("filters: "+m.filterSummary(f)) + "\n\n")
	}

	switch {
	case m.snap.Loading:
		b.WriteString(m.spinner.View() + m.styles.Normal.Render(" loading projects..."))
	case m.snap.Err != nil:
		b.WriteString(m.styles.Error.Render("failed to load projects: " + m.snap.Err.Error()))
	case len(m.snap.Projects) == 0:
		b.WriteString(m.styles.Muted.Render("no projects match the current filters"))
	default:
		for i, p := range m.snap.Projects {
			b.WriteString(m.projectRow(i, p))
		}
	}

	b.WriteString("\n" + m.pagerView())
	b.WriteString(m.styles.Help.Render("↑/↓ select · enter details · ←/→ page · s/l/p filter · x clear · r refresh · q quit"))
	return b.String()
}

func (m Model) projectRow(i int, p models.Project) string {
	title := p.Title
	if i == m.cursor {
		title = m.styles.Selected.Render("> " + title)
	} else {
		title = m.styles.Header.Render("  " + title)
	}

	desc := p.Description
	if len(desc) > descriptionExcerpt {
		desc = desc[:descriptionExcerpt] + "..."
	}

	row := title + "\n"
	if desc != "" {
		row += m.styles.Normal.Render("  "+desc) + "\n"
	}
	if len(p.Languages) > 0 {
		row += m.styles.Tag.Render("  "+output.TagList(p.Languages)) + "\n"
	}
	return row + "\n"
}

// pagerView renders "page N of M" with the arrow hints dimmed when the
// corresponding control is disabled.
func (m Model) pagerView() string {
	prev, next := "←", "→"
	if !m.snap.HasPrev() {
		prev = m.styles.Muted.Render(prev)
	}
	if !m.snap.HasNext() {
		next = m.styles.Muted.Render(next)
	}
	label := fmt.Sprintf(" page %d of %d ", m.snap.PageNumber, m.snap.TotalPages)
	return m.styles.Pager.Render(prev+label+next) + "\n"
}

func (m Model) filterSummary(f models.Filter) string {
	var parts []string
	add := func(kind models.CategoryKind, id int) {
		if id == 0 {
			return
		}
		name := fmt.Sprintf("#%d", id)
		if m.menu != nil {
			for _, c := range m.menu.ByKind(kind) {
				if c.ID == id {
					name = c.Name
					break
				}
			}
		}
		parts = append(parts, fmt.Sprintf("%s=%s", kind, name))
	}
	add(models.KindSegment, f.SegmentID)
	add(models.KindPlatform, f.PlatformID)
	add(models.KindLanguage, f.LanguageID)
	return strings.Join(parts, " ")
}

func (m Model) filterView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("filter by %s", m.filterKind)))
	b.WriteString("\n\n")

	for i, c := range m.filterItems() {
		line := c.Name
		if i == m.filterCursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = m.styles.Normal.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(m.styles.Help.Render("enter select · esc cancel"))
	return b.String()
}

func (m Model) detailView() string {
	var b strings.Builder

	switch {
	case m.detailErr != nil:
		b.WriteString(m.styles.Error.Render("failed to load project: " + m.detailErr.Error()))
	case m.detail == nil:
		b.WriteString(m.spinner.View() + m.styles.Normal.Render(" loading project..."))
	default:
		p := m.detail
		b.WriteString(m.styles.Title.Render(p.Title) + "\n\n")
		if p.Description != "" {
			b.WriteString(m.styles.Normal.Render(p.Description) + "\n\n")
		}

		b.WriteString(m.fieldRow("Link", p.Link))
		b.WriteString(m.fieldRow("Technical details", p.TechnicalDetails))
		b.WriteString(m.fieldRow("Statistics", p.StatisticsResults))
		b.WriteString(m.fieldRow("Documentation", p.Documentation))
		b.WriteString(m.fieldRow("Segments", output.TagList(p.Segments)))
		b.WriteString(m.fieldRow("Platforms", output.TagList(p.Platforms)))
		b.WriteString(m.fieldRow("Languages", output.TagList(p.Languages)))

		b.WriteString("\n" + m.carouselView(p))
	}

	b.WriteString(m.styles.Help.Render("h/l cycle images · esc back · q quit"))
	return b.String()
}

func (m Model) fieldRow(label, value string) string {
	if value == "" || value == "-" {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Header.Render(label+": "),
		m.styles.Normal.Render(value),
	) + "\n"
}

// carouselView shows one image URL at a time, cover first.
func (m Model) carouselView(p *models.Project) string {
	imgs := p.CarouselImages()
	if len(imgs) == 0 {
		return m.styles.Muted.Render("no images") + "\n"
	}
	idx := m.carousel
	if idx >= len(imgs) {
		idx = len(imgs) - 1
	}
	img := imgs[idx]
	label := fmt.Sprintf("image %d of %d", idx+1, len(imgs))
	if img.IsCover {
		label += " (cover)"
	}
	return m.styles.Header.Render(label) + "\n" + m.styles.Normal.Render(img.URL) + "\n"
}
