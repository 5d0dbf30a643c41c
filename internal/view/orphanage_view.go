package view

import (
	"fmt"
	"strings"

	"orphanage-service/internal/model"
)

// OrphanageImage is the client-facing shape of an image: the server-local
// storage path is rewritten into a URL the client can actually fetch.
type OrphanageImage struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

// Orphanage is the wire representation returned to clients.
type Orphanage struct {
	ID             uint             `json:"id"`
	Name           string           `json:"name"`
	Latitude       float64          `json:"latitude"`
	Longitude      float64          `json:"longitude"`
	About          string           `json:"about"`
	Instructions   string           `json:"instructions"`
	OpeningHours   string           `json:"opening_hours"`
	OpenOnWeekends bool             `json:"open_on_weekends"`
	Images         []OrphanageImage `json:"images"`
}

// Renderer shapes stored orphanages into their wire representation. The
// store records where a file lives on disk, not how a remote client reaches
// it; the renderer bridges the two with the service's public base URL.
type Renderer struct {
	baseURL string
}

func NewRenderer(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
}

// Render maps a single orphanage to its view object.
func (r *Renderer) Render(orphanage *model.Orphanage) Orphanage {
	images := make([]OrphanageImage, 0, len(orphanage.Images))
	for _, image := range orphanage.Images {
		images = append(images, OrphanageImage{
			ID:  image.ID,
			URL: fmt.Sprintf("%s/uploads/%s", r.baseURL, image.Path),
		})
	}

	return Orphanage{
		ID:             orphanage.ID,
		Name:           orphanage.Name,
		Latitude:       orphanage.Latitude,
		Longitude:      orphanage.Longitude,
		About:          orphanage.About,
		Instructions:   orphanage.Instructions,
		OpeningHours:   orphanage.OpeningHours,
		OpenOnWeekends: orphanage.OpenOnWeekends,
		Images:         images,
	}
}

// RenderMany maps a list of orphanages to their view objects.
func (r *Renderer) RenderMany(orphanages []model.Orphanage) []Orphanage {
	views := make([]Orphanage, 0, len(orphanages))
	for i := range orphanages {
		views = append(views, r.Render(&orphanages[i]))
	}
	return views
}
