package skillset

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Skillset, error)
	FindByID(ctx context.Context, id uint64) (*Skillset, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Skillset, error) {
	var skills []Skillset
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&skills).Error
	return skills, err
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*Skillset, error) {
	var skill Skillset
	err := r.db.WithContext(ctx).
		First(&skill, "id = ?", id).Error
	return &skill, err
}
