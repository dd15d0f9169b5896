package activity

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
	return db.AutoMigrate(&Activity{})
}

func (r *GormRepository) Create(ctx context.Context, a *Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Activity, error) {
	var a Activity
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormRepository) List(ctx context.Context, establishmentID *int64) ([]Activity, error) {
	q := r.db.WithContext(ctx).Model(&Activity{})
	if establishmentID != nil {
		q = q.Where("establishment_id = ?", *establishmentID)
	}
	var out []Activity
	err := q.Order("title ASC").Find(&out).Error
	return out, err
}

func (r *GormRepository) Update(ctx context.Context, a *Activity) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Activity{}, id)
	return tx.RowsAffected, tx.Error
}
