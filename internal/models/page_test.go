package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		pageSize   int
		want       int
	}{
		{"exact multiple", 12, 6, 2},
		{"rounds up", 13, 6, 3},
		{"single partial page", 5, 6, 1},
		{"zero items means zero pages", 0, 6, 0},
		{"one item", 1, 6, 1},
		{"page size one", 7, 1, 7},
		{"invalid page size", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Page[Project]{TotalItems: tt.totalItems}
			assert.Equal(t, tt.want, p.TotalPages(tt.pageSize))
		})
	}
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{SegmentID: 1}.IsZero())
	assert.False(t, Filter{PlatformID: 2}.IsZero())
	assert.False(t, Filter{LanguageID: 3}.IsZero())
}
