package holiday

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
	return db.AutoMigrate(&Holiday{})
}

func (r *GormRepository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Holiday, error) {
	var h Holiday
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *GormRepository) List(ctx context.Context, f Filter) ([]Holiday, error) {
	q := r.db.WithContext(ctx).Model(&Holiday{})
	if f.EmployeeID != nil {
		q = q.Where("employee_id = ?", *f.EmployeeID)
	}
	if f.EstablishmentID != nil {
		q = q.Where("establishment_id = ?", *f.EstablishmentID)
	}
	var out []Holiday
	err := q.Order("begin_date ASC").Find(&out).Error
	return out, err
}

func (r *GormRepository) Update(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Holiday{}, id)
	return tx.RowsAffected, tx.Error
}
