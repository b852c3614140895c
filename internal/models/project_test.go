package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverImage(t *testing.T) {
	p := Project{Images: []Image{
		{ID: 1, URL: "a.png"},
		{ID: 2, URL: "b.png", IsCover: true},
		{ID: 3, URL: "c.png"},
	}}
	cover := p.CoverImage()
	require.NotNil(t, cover)
	assert.Equal(t, 2, cover.ID)
}

func TestCoverImage_NoneFlagged(t *testing.T) {
	p := Project{Images: []Image{{ID: 1, URL: "a.png"}}}
	assert.Nil(t, p.CoverImage())

	empty := Project{}
	assert.Nil(t, empty.CoverImage())
}

func TestCarouselImages_CoverFirst(t *testing.T) {
	p := Project{Images: []Image{
		{ID: 1, URL: "a.png"},
		{ID: 2, URL: "b.png", IsCover: true},
		{ID: 3, URL: "c.png"},
	}}
	imgs := p.CarouselImages()
	require.Len(t, imgs, 3)
	assert.Equal(t, 2, imgs[0].ID)
	assert.Equal(t, 1, imgs[1].ID)
	assert.Equal(t, 3, imgs[2].ID)
}

func TestCarouselImages_Empty(t *testing.T) {
	p := Project{}
	assert.Nil(t, p.CarouselImages())
}

func TestParseCategoryKind(t *testing.T) {
	for input, want := range map[string]CategoryKind{
		"segment":   KindSegment,
		"segments":  KindSegment,
		"language":  KindLanguage,
		"languages": KindLanguage,
		"platform":  KindPlatform,
	} {
		got, err := ParseCategoryKind(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseCategoryKind("genre")
	assert.Error(t, err)
}
