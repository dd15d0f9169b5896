package observation

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
	return db.AutoMigrate(&Observation{})
}

func (r *GormRepository) Create(ctx context.Context, o *Observation) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Observation, error) {
	var o Observation
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormRepository) List(ctx context.Context, dogID *int64) ([]Observation, error) {
	q := r.db.WithContext(ctx).Model(&Observation{})
	if dogID != nil {
		q = q.Where("dog_id = ?", *dogID)
	}
	var out []Observation
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *GormRepository) Update(ctx context.Context, o *Observation) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Observation{}, id)
	return tx.RowsAffected, tx.Error
}
