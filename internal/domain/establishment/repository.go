package establishment

import (
	"context"

	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Establishment{})
}

func (r *GormRepository) Create(ctx context.Context, e *Establishment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Establishment, error) {
	var e Establishment
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormRepository) List(ctx context.Context, ownerID *int64) ([]Establishment, error) {
	q := r.db.WithContext(ctx).Model(&Establishment{})
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	var out []Establishment
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *GormRepository) Update(ctx context.Context, e *Establishment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Establishment{}, id)
	return tx.RowsAffected, tx.Error
}
