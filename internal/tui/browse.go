package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joescharf/folio/internal/catalog"
	"github.com/joescharf/folio/internal/models"
)

// Service is the slice of the API client the browser needs beyond the
// listing coordinator: the taxonomy menu and single-project fetches.
type Service interface {
	MenuCategories(ctx context.Context) (*models.Menu, error)
	ProjectByID(ctx context.Context, id int) (*models.Project, error)
}

type viewState int

const (
	viewListing viewState = iota
	viewFilter
	viewDetail
)

// Messages.

type listUpdateMsg struct{ snap catalog.Snapshot }

type menuLoadedMsg struct{ menu *models.Menu }

type menuErrMsg struct{ err error }

// Detail fetches are tagged like listing fetches: a stale completion for
// a superseded navigation is ignored.
type detailLoadedMsg struct {
	seq     int
	project *models.Project
}

type detailErrMsg struct {
	seq int
	err error
}

// Model is the bubbletea model for the catalog browser.
type Model struct {
	svc    Service
	list   *catalog.List
	styles Styles

	spinner spinner.Model
	width   int
	height  int

	snap   catalog.Snapshot
	cursor int

	// Taxonomy menu, fetched once per program start.
	menu    *models.Menu
	menuErr error

	view         viewState
	filterKind   models.CategoryKind
	filterCursor int

	detail     *models.Project
	detailErr  error
	detailSeq  int
	carousel   int
}

// New creates the browser around an explicitly injected coordinator.
func New(svc Service, list *catalog.List) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		svc:     svc,
		list:    list,
		styles:  DefaultStyles(),
		spinner: sp,
		snap:    list.Snapshot(),
		width:   80,
		height:  24,
	}
}

// Init starts the menu load, the initial listing fetch, and the update
// pump from the coordinator.
func (m Model) Init() tea.Cmd {
	m.list.Refresh()
	return tea.Batch(m.loadMenu, m.waitForUpdate, m.spinner.Tick)
}

// loadMenu fetches the three taxonomy lists once.
func (m Model) loadMenu() tea.Msg {
	menu, err := m.svc.MenuCategories(context.Background())
	if err != nil {
		return menuErrMsg{err}
	}
	return menuLoadedMsg{menu}
}

// waitForUpdate blocks on the coordinator's update channel. It re-arms
// itself after every message until the channel closes on unmount.
func (m Model) waitForUpdate() tea.Msg {
	snap, ok := <-m.list.Updates()
	if !ok {
		return nil
	}
	return listUpdateMsg{snap}
}

func (m Model) loadDetail(id, seq int) tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.ProjectByID(context.Background(), id)
		if err != nil {
			return detailErrMsg{seq: seq, err: err}
		}
		return detailLoadedMsg{seq: seq, project: p}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listUpdateMsg:
		m.snap = msg.snap
		if max := len(m.snap.Projects) - 1; m.cursor > max {
			if max < 0 {
				m.cursor = 0
			} else {
				m.cursor = max
			}
		}
		return m, m.waitForUpdate

	case menuLoadedMsg:
		m.menu = msg.menu
		m.menuErr = nil
		return m, nil

	case menuErrMsg:
		m.menuErr = msg.err
		return m, nil

	case detailLoadedMsg:
		if msg.seq != m.detailSeq {
			return m, nil
		}
		m.detail = msg.project
		m.detailErr = nil
		m.carousel = 0
		return m, nil

	case detailErrMsg:
		if msg.seq != m.detailSeq {
			return m, nil
		}
		m.detail = nil
		m.detailErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" || key == "q" {
		m.list.Close()
		return m, tea.Quit
	}

	switch m.view {
	case viewFilter:
		return m.handleFilterKey(msg)
	case viewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListingKey(msg)
	}
}

func (m Model) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Projects)-1 {
			m.cursor++
		}
	case "left":
		// Controls disable at the bounds; the coordinator itself does
		// not range-check.
		if m.snap.HasPrev() {
			m.list.SetPage(m.snap.PageNumber - 1)
		}
	case "right":
		if m.snap.HasNext() {
			m.list.SetPage(m.snap.PageNumber + 1)
		}
	case "r":
		m.list.Refresh()
	case "x":
		m.list.ClearFilters()
	case "s":
		return m.openFilter(models.KindSegment)
	case "l":
		return m.openFilter(models.KindLanguage)
	case "p":
		return m.openFilter(models.KindPlatform)
	case "enter":
		if m.cursor < len(m.snap.Projects) {
			m.view = viewDetail
			m.detail = nil
			m.detailErr = nil
			m.detailSeq++
			return m, m.loadDetail(m.snap.Projects[m.cursor].ID, m.detailSeq)
		}
	}
	return m, nil
}

func (m Model) openFilter(kind models.CategoryKind) (tea.Model, tea.Cmd) {
	if m.menu == nil {
		return m, nil
	}
	m.view = viewFilter
	m.filterKind = kind
	m.filterCursor = 0
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.filterItems()
	switch msg.String() {
	case "esc":
		m.view = viewListing
	case "up", "k":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
	case "down", "j":
		if m.filterCursor < len(items)-1 {
			m.filterCursor++
		}
	case "enter":
		if m.filterCursor < len(items) {
			// Only the selected taxonomy changes; the other two kinds'
			// selections survive.
			m.list.SetFilters(m.filterOption(items[m.filterCursor].ID))
		}
		m.view = viewListing
	}
	return m, nil
}

// filterItems returns the dropdown entries for the open taxonomy, with a
// synthetic "all" entry (id 0) that clears just this kind's constraint.
func (m Model) filterItems() []models.Category {
	if m.menu == nil {
		return nil
	}
	return append([]models.Category{{ID: 0, Name: "All"}}, m.menu.ByKind(m.filterKind)...)
}

func (m Model) filterOption(id int) catalog.FilterOption {
	switch m.filterKind {
	case models.KindSegment:
		return catalog.WithSegment(id)
	case models.KindPlatform:
		return catalog.WithPlatform(id)
	default:
		return catalog.WithLanguage(id)
	}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.view = viewListing
		m.detail = nil
		m.detailErr = nil
		// Invalidate any in-flight detail fetch.
		m.detailSeq++
	case "h", "left":
		if m.detail != nil && m.carousel > 0 {
			m.carousel--
		}
	case "l", "right":
		if m.detail != nil && m.carousel < len(m.detail.CarouselImages())-1 {
			m.carousel++
		}
	}
	return m, nil
}
