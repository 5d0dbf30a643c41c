package repository

import (
	"errors"

	"orphanage-service/internal/model"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no orphanage matches the requested id.
var ErrNotFound = errors.New("orphanage not found")

// OrphanageRepository is the persistence layer for orphanages and their
// images. Eager loading of images is part of the contract: every orphanage
// returned by ListAll or GetByID carries its full image set.
type OrphanageRepository struct {
	db *gorm.DB
}

func NewOrphanageRepository(db *gorm.DB) *OrphanageRepository {
	return &OrphanageRepository{db: db}
}

// ListAll returns every orphanage with its images, in insertion order.
func (r *OrphanageRepository) ListAll() ([]model.Orphanage, error) {
	var orphanages []model.Orphanage
	result := r.db.Preload("Images").Order("id").Find(&orphanages)
	if result.Error != nil {
		return nil, result.Error
	}
	return orphanages, nil
}

// GetByID returns the orphanage with the given id and its images, or
// ErrNotFound. It never returns a partial record.
func (r *OrphanageRepository) GetByID(id uint) (*model.Orphanage, error) {
	var orphanage model.Orphanage
	result := r.db.Preload("Images").First(&orphanage, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &orphanage, nil
}

// Create persists the orphanage and its images as one unit. Either the root
// record and all of its images are durably recorded or none of them are. On
// success the orphanage and each image carry their assigned ids.
func (r *OrphanageRepository) Create(orphanage *model.Orphanage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(orphanage).Error
	})
}
