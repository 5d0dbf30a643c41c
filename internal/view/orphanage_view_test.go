package view

import (
	"testing"

	"orphanage-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRewritesImagePaths(t *testing.T) {
	renderer := NewRenderer("http://localhost:3333")

	orphanage := model.Orphanage{
		ID:             1,
		Name:           "Shelter A",
		Latitude:       -23.5,
		Longitude:      -46.6,
		About:          "desc",
		Instructions:   "how",
		OpeningHours:   "8-18",
		OpenOnWeekends: true,
		Images: []model.Image{
			{ID: 10, Path: "a.jpg"},
			{ID: 11, Path: "b.jpg"},
		},
	}

	rendered := renderer.Render(&orphanage)

	assert.Equal(t, uint(1), rendered.ID)
	assert.Equal(t, "Shelter A", rendered.Name)
	assert.True(t, rendered.OpenOnWeekends)
	require.Len(t, rendered.Images, 2)
	assert.Equal(t, "http://localhost:3333/uploads/a.jpg", rendered.Images[0].URL)
	assert.Equal(t, "http://localhost:3333/uploads/b.jpg", rendered.Images[1].URL)
	assert.NotEqual(t, rendered.Images[0].URL, rendered.Images[1].URL)
}

func TestRenderTrimsTrailingSlash(t *testing.T) {
	renderer := NewRenderer("http://example.com/")

	rendered := renderer.Render(&model.Orphanage{
		Images: []model.Image{{ID: 1, Path: "x.jpg"}},
	})

	require.Len(t, rendered.Images, 1)
	assert.Equal(t, "http://example.com/uploads/x.jpg", rendered.Images[0].URL)
}

func TestRenderWithoutImages(t *testing.T) {
	renderer := NewRenderer("http://example.com")

	rendered := renderer.Render(&model.Orphanage{ID: 7, Name: "Empty"})

	// An orphanage without images renders an empty list, not null.
	assert.NotNil(t, rendered.Images)
	assert.Empty(t, rendered.Images)
}

func TestRenderMany(t *testing.T) {
	renderer := NewRenderer("http://example.com")

	orphanages := []model.Orphanage{
		{ID: 1, Name: "A", Images: []model.Image{{ID: 1, Path: "a.jpg"}}},
		{ID: 2, Name: "B"},
	}

	rendered := renderer.RenderMany(orphanages)
	require.Len(t, rendered, 2)
	assert.Equal(t, "A", rendered[0].Name)
	assert.Len(t, rendered[0].Images, 1)
	assert.Empty(t, rendered[1].Images)

	assert.Empty(t, renderer.RenderMany(nil))
}
