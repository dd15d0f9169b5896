package payment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Payment{})
}

func (r *GormRepository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	var p Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepository) GetByInvID(ctx context.Context, invID int64) (*Payment, error) {
	var p Payment
	if err := r.db.WithContext(ctx).Where("inv_id = ?", invID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepository) List(ctx context.Context, reservationID *int64) ([]Payment, error) {
	q := r.db.WithContext(ctx).Model(&Payment{})
	if reservationID != nil {
		q = q.Where("reservation_id = ?", *reservationID)
	}
	var out []Payment
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

// MarkFailed records a rejected callback unless the payment is already paid.
func (r *GormRepository) MarkFailed(ctx context.Context, invID int64, rawBody, reason string) error {
	return r.db.WithContext(ctx).Model(&Payment{}).
		Where("inv_id = ? AND status <> ?", invID, StatusPaid).
		Updates(map[string]any{
			"status":          StatusFailed,
			"result_raw_body": rawBody,
			"failure_reason":  reason,
		}).Error
}

// MarkPaid flips the payment to paid under a row lock. It reports false when
// the payment was already paid.
func (r *GormRepository) MarkPaid(ctx context.Context, invID int64, rawBody string, paidAt time.Time) (bool, error) {
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p Payment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("inv_id = ?", invID).First(&p).Error; err != nil {
			return err
		}
		if p.Status == StatusPaid {
			return nil
		}

		res := tx.Model(&Payment{}).Where("inv_id = ?", invID).Updates(map[string]any{
			"status":          StatusPaid,
			"result_raw_body": rawBody,
			"failure_reason":  "",
			"paid_at":         paidAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("payment row not updated")
		}
		changed = true
		return nil
	})
	return changed, err
}

// ExpireStale fails checkouts still in created state that were opened before
// the cutoff.
func (r *GormRepository) ExpireStale(ctx context.Context, before time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&Payment{}).
		Where("status = ? AND created_at < ?", StatusCreated, before.UTC()).
		Updates(map[string]any{"status": StatusFailed, "failure_reason": "expired"})
	return tx.RowsAffected, tx.Error
}
