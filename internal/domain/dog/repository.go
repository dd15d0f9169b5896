package dog

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
	return db.AutoMigrate(&Dog{})
}

func (r *GormRepository) Create(ctx context.Context, d *Dog) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Dog, error) {
	var d Dog
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormRepository) List(ctx context.Context, f Filter) ([]Dog, error) {
	q := r.db.WithContext(ctx).Model(&Dog{})
	if f.OwnerID != nil {
		q = q.Where("owner_id = ?", *f.OwnerID)
	}
	if f.EstablishmentID != nil {
		q = q.Where("establishment_id = ?", *f.EstablishmentID)
	}
	var out []Dog
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *GormRepository) Update(ctx context.Context, d *Dog) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Dog{}, id)
	return tx.RowsAffected, tx.Error
}
