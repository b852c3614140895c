// Package catalog holds the pagination/filter coordinator for the project
// listing. A List is the single source of truth for "what page, under what
// filters, is displayed" and keeps the fetched project slice consistent
// with it. Lists are constructed explicitly and injected; there is no
// package-level instance, so tests and views can run independent copies.
package catalog

import (
	"context"
	"sync"

	"github.com/joescharf/folio/internal/models"
)

// DefaultPageSize is the grid size used when the caller does not set one.
const DefaultPageSize = 6

// Fetcher is the slice of the API client the coordinator needs.
type Fetcher interface {
	Projects(ctx context.Context, pageNumber, pageSize int, filter models.Filter) (models.Page[models.Project], error)
}

// Snapshot is an immutable copy of the listing state, safe to render from.
type Snapshot struct {
	PageNumber int
	PageSize   int
	TotalPages int
	Filter     models.Filter
	Projects   []models.Project
	Loading    bool
	Err        error
}

// HasPrev reports whether the previous-page control should be enabled.
func (s Snapshot) HasPrev() bool { return s.PageNumber > 1 }

// HasNext reports whether the next-page control should be enabled.
func (s Snapshot) HasNext() bool { return s.PageNumber < s.TotalPages }

// List coordinates page number, filter selection, and the fetched slice.
//
// Every state change that affects the query issues exactly one fetch,
// tagged with a monotonic sequence number. A completion whose tag is no
// longer the latest is discarded, success or failure, so a stale response
// can never overwrite a newer one (last-request-wins). After Close no
// completion is applied at all.
type List struct {
	fetcher  Fetcher
	pageSize int

	mu         sync.Mutex
	pageNumber int
	totalPages int
	filter     models.Filter
	projects   []models.Project
	loading    bool
	err        error

	seq     uint64
	cancel  context.CancelFunc // cancels the in-flight fetch, nil when idle
	closed  bool
	updates chan Snapshot
}

// New creates an idle List. Nothing is fetched until the first operation;
// callers typically Refresh once on mount.
func New(f Fetcher, pageSize int) *List {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &List{
		fetcher:    f,
		pageSize:   pageSize,
		pageNumber: 1,
		totalPages: 1,
		updates:    make(chan Snapshot, 1),
	}
}

// FilterOption mutates one field of the filter selection. Fields without
// an option are left unchanged; this is the partial-update half of the
// SetFilters/ClearFilters asymmetry.
type FilterOption func(*models.Filter)

// WithSegment constrains the listing to one business segment. Zero clears
// only the segment constraint.
func WithSegment(id int) FilterOption { return func(f *models.Filter) { f.SegmentID = id } }

// WithPlatform constrains the listing to one platform.
func WithPlatform(id int) FilterOption { return func(f *models.Filter) { f.PlatformID = id } }

// WithLanguage constrains the listing to one technology/language.
func WithLanguage(id int) FilterOption { return func(f *models.Filter) { f.LanguageID = id } }

// SetPage moves to page n and refetches. Bounds are a UI concern: the
// controls disable at page 1 and TotalPages, and an out-of-range n is
// passed through to the service untouched.
func (l *List) SetPage(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || n == l.pageNumber {
		return
	}
	l.pageNumber = n
	l.fetchLocked()
}

// SetFilters applies a partial update to the filter selection and
// refetches. Only fields named by an option change; the rest persist, so
// selecting a platform never resets an active segment.
func (l *List) SetFilters(opts ...FilterOption) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	next := l.filter
	for _, opt := range opts {
		opt(&next)
	}
	if next == l.filter {
		return
	}
	l.filter = next
	l.fetchLocked()
}

// ClearFilters drops all three constraints, leaving the page untouched.
func (l *List) ClearFilters() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.filter.IsZero() {
		return
	}
	l.filter = models.Filter{}
	l.fetchLocked()
}

// Refresh refetches with the current page and filters, mutating neither.
func (l *List) Refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.fetchLocked()
}

// Close cancels any in-flight fetch and stops all state application; it
// is the unmount hook. The updates channel is closed.
func (l *List) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	close(l.updates)
}

// Snapshot returns a copy of the current state.
func (l *List) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Updates delivers coalesced snapshots after every state change. The
// channel holds only the most recent snapshot; slow consumers see the
// latest state, not a backlog.
func (l *List) Updates() <-chan Snapshot {
	return l.updates
}

func (l *List) snapshotLocked() Snapshot {
	return Snapshot{
		PageNumber: l.pageNumber,
		PageSize:   l.pageSize,
		TotalPages: l.totalPages,
		Filter:     l.filter,
		Projects:   l.projects,
		Loading:    l.loading,
		Err:        l.err,
	}
}

// fetchLocked issues one tagged fetch for the current combined state.
// Caller holds l.mu.
func (l *List) fetchLocked() {
	l.seq++
	seq := l.seq

	// A superseded request is also cancelled; its completion would be
	// discarded anyway, this just stops wasting the round trip.
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	l.loading = true
	l.err = nil
	page, size, filter := l.pageNumber, l.pageSize, l.filter
	l.publishLocked()

	go func() {
		result, err := l.fetcher.Projects(ctx, page, size, filter)
		cancel()

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed || seq != l.seq {
			return // stale completion, drop it
		}
		l.cancel = nil
		l.loading = false
		if err != nil {
			l.err = err
		} else {
			l.projects = result.Items
			l.totalPages = result.TotalPages(size)
		}
		l.publishLocked()
	}()
}

// publishLocked replaces any pending snapshot on the updates channel.
// Caller holds l.mu, so no other sender can race the drain.
func (l *List) publishLocked() {
	if l.closed {
		return
	}
	snap := l.snapshotLocked()
	select {
	case l.updates <- snap:
	default:
		select {
		case <-l.updates:
		default:
		}
		l.updates <- snap
	}
}
