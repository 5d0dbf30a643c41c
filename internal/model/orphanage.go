package model

import (
	"time"
)

// Orphanage represents a care facility with its location and visiting metadata
type Orphanage struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null"`
	Latitude       float64   `json:"latitude" gorm:"not null"`
	Longitude      float64   `json:"longitude" gorm:"not null"`
	About          string    `json:"about" gorm:"type:varchar(300);not null"`
	Instructions   string    `json:"instructions" gorm:"type:text;not null"`
	OpeningHours   string    `json:"opening_hours" gorm:"type:varchar(255);not null"`
	OpenOnWeekends bool      `json:"open_on_weekends" gorm:"default:false"`
	Images         []Image   `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Image represents an uploaded photo of an orphanage. Images have no
// lifecycle of their own: they are created with their owner and removed with
// it (cascade on the foreign key).
type Image struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Path        string `json:"path" gorm:"type:varchar(255);not null"`
	OrphanageID uint   `json:"orphanage_id" gorm:"index;not null"`
}
