package reservation

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Reservation{})
}

func (r *GormRepository) Create(ctx context.Context, res *Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	var res Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *GormRepository) List(ctx context.Context, sessionID *int64) ([]Reservation, error) {
	q := r.db.WithContext(ctx).Model(&Reservation{})
	if sessionID != nil {
		q = q.Where("session_id = ?", *sessionID)
	}
	var out []Reservation
	err := q.Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *GormRepository) Update(ctx context.Context, res *Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *GormRepository) SetApproved(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_approved": true, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Reservation{}, id)
	return tx.RowsAffected, tx.Error
}

// CountBySession counts every reservation on the session, approved or not.
func (r *GormRepository) CountBySession(ctx context.Context, sessionID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Reservation{}).
		Where("session_id = ?", sessionID).
		Count(&n).Error
	return n, err
}

// ReservedSessionIDs returns the subset of sessionIDs holding at least one
// reservation.
func (r *GormRepository) ReservedSessionIDs(ctx context.Context, sessionIDs []int64) ([]int64, error) {
	if len(sessionIDs) == 0 {
		return []int64{}, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).Model(&Reservation{}).
		Distinct("session_id").
		Where("session_id IN ?", sessionIDs).
		Pluck("session_id", &ids).Error
	return ids, err
}
