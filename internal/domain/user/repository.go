package user

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type userModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	Firstname        string     `gorm:"column:firstname;not null"`
	Lastname         string     `gorm:"column:lastname;not null"`
	Email            string     `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash     string     `gorm:"column:password_hash;not null"`
	Phone            *string    `gorm:"column:phone"`
	Avatar           *string    `gorm:"column:avatar"`
	Role             string     `gorm:"column:role;index;not null"`
	EstablishmentID  *int64     `gorm:"column:establishment_id;index"`
	LastConnectionAt *time.Time `gorm:"column:last_connection_at"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{})
}

func toDomainUser(m userModel) *User {
	var phone, avatar string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Avatar != nil {
		avatar = *m.Avatar
	}

	return &User{
		ID:               m.ID,
		Firstname:        m.Firstname,
		Lastname:         m.Lastname,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		Phone:            phone,
		Avatar:           avatar,
		Role:             principal.Role(m.Role),
		EstablishmentID:  m.EstablishmentID,
		LastConnectionAt: m.LastConnectionAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toUserModel(u *User) userModel {
	return userModel{
		ID:               u.ID,
		Firstname:        u.Firstname,
		Lastname:         u.Lastname,
		Email:            strings.ToLower(strings.TrimSpace(u.Email)),
		PasswordHash:     u.PasswordHash,
		Phone:            optional(u.Phone),
		Avatar:           optional(u.Avatar),
		Role:             string(u.Role),
		EstablishmentID:  u.EstablishmentID,
		LastConnectionAt: u.LastConnectionAt,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *GormRepository) Create(ctx context.Context, u *User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *GormRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var m userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *GormRepository) List(ctx context.Context, f Filter) ([]User, error) {
	q := r.db.WithContext(ctx).Model(&userModel{})
	if f.Role != nil {
		q = q.Where("role = ?", string(*f.Role))
	}
	if f.EstablishmentID != nil {
		q = q.Where("establishment_id = ?", *f.EstablishmentID)
	}

	var rows []userModel
	if err := q.Order("lastname ASC, firstname ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *GormRepository) Update(ctx context.Context, u *User) error {
	m := toUserModel(u)
	return r.db.WithContext(ctx).Model(&userModel{ID: u.ID}).
		Select("firstname", "lastname", "email", "password_hash", "phone", "avatar", "role", "establishment_id", "updated_at").
		Updates(&m).Error
}

func (r *GormRepository) AssignEstablishment(ctx context.Context, userID, establishmentID int64) error {
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{"establishment_id": establishmentID, "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepository) TouchLastConnection(ctx context.Context, userID int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", userID).
		Update("last_connection_at", at).Error
}

func (r *GormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&userModel{}, id)
	return tx.RowsAffected, tx.Error
}
