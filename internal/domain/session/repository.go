package session

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

type sessionModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	EducatorID      int64     `gorm:"column:educator_id;index;not null"`
	ActivityID      int64     `gorm:"column:activity_id;index;not null"`
	EstablishmentID int64     `gorm:"column:establishment_id;index;not null"`
	Status          string    `gorm:"column:status;type:varchar(20);not null;default:pending"`
	MaximumCapacity int       `gorm:"column:maximum_capacity;not null;default:1"`
	Report          *string   `gorm:"column:report"`
	BeginDate       time.Time `gorm:"column:begin_date;index;not null"`
	EndDate         time.Time `gorm:"column:end_date;index;not null"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string { return "sessions" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&sessionModel{})
}

func toDomainSession(m sessionModel) *Session {
	var report string
	if m.Report != nil {
		report = *m.Report
	}

	return &Session{
		ID:              m.ID,
		EducatorID:      m.EducatorID,
		ActivityID:      m.ActivityID,
		EstablishmentID: m.EstablishmentID,
		Status:          Status(m.Status),
		MaximumCapacity: m.MaximumCapacity,
		Report:          report,
		BeginDate:       m.BeginDate.UTC(),
		EndDate:         m.EndDate.UTC(),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toSessionModel(s *Session) sessionModel {
	var report *string
	if s.Report != "" {
		v := s.Report
		report = &v
	}

	return sessionModel{
		ID:              s.ID,
		EducatorID:      s.EducatorID,
		ActivityID:      s.ActivityID,
		EstablishmentID: s.EstablishmentID,
		Status:          string(s.Status),
		MaximumCapacity: s.MaximumCapacity,
		Report:          report,
		BeginDate:       s.BeginDate.UTC(),
		EndDate:         s.EndDate.UTC(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ListFilter is applied conjunctively; nil fields are ignored.
type ListFilter struct {
	EducatorID      *int64
	ActivityID      *int64
	EstablishmentID *int64
	Window          *Window
}

func (r *GormRepository) Create(ctx context.Context, s *Session) error {
	m := toSessionModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = *toDomainSession(m)
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Session, error) {
	var m sessionModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainSession(m), nil
}

func (r *GormRepository) List(ctx context.Context, f ListFilter) ([]Session, error) {
	q := r.db.WithContext(ctx).Model(&sessionModel{})
	if f.EducatorID != nil {
		q = q.Where("educator_id = ?", *f.EducatorID)
	}
	if f.ActivityID != nil {
		q = q.Where("activity_id = ?", *f.ActivityID)
	}
	if f.EstablishmentID != nil {
		q = q.Where("establishment_id = ?", *f.EstablishmentID)
	}
	if f.Window != nil {
		q = q.Where("begin_date < ? AND end_date > ?", f.Window.End.UTC(), f.Window.Start.UTC())
	}

	var rows []sessionModel
	if err := q.Order("begin_date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]Session, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSession(m))
	}
	return out, nil
}

// Update overwrites every mutable column except the report.
func (r *GormRepository) Update(ctx context.Context, s *Session) error {
	tx := r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"educator_id":      s.EducatorID,
			"activity_id":      s.ActivityID,
			"establishment_id": s.EstablishmentID,
			"status":           string(s.Status),
			"maximum_capacity": s.MaximumCapacity,
			"begin_date":       s.BeginDate.UTC(),
			"end_date":         s.EndDate.UTC(),
			"updated_at":       time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepository) UpdateReport(ctx context.Context, id int64, report string) error {
	tx := r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"report": report, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&sessionModel{}, id)
	return tx.RowsAffected, tx.Error
}

func (r *GormRepository) DeleteByEducator(ctx context.Context, educatorID int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("educator_id = ?", educatorID).Delete(&sessionModel{})
	return tx.RowsAffected, tx.Error
}

func (r *GormRepository) DeleteByActivity(ctx context.Context, activityID int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("activity_id = ?", activityID).Delete(&sessionModel{})
	return tx.RowsAffected, tx.Error
}
