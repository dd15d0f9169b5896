package holiday

import "time"

// Holiday is a leave period requested by an employee of an establishment.
type Holiday struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	EmployeeID      int64     `gorm:"index;not null" json:"employee_id"`
	EstablishmentID int64     `gorm:"index;not null" json:"establishment_id"`
	BeginDate       time.Time `gorm:"not null" json:"begin_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	IsApproved      bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Holiday) TableName() string { return "holidays" }

type Filter struct {
	EmployeeID      *int64
	EstablishmentID *int64
}
