package holiday

import "time"

type CreateRequest struct {
	EmployeeID      *int64    `json:"employee_id" validate:"omitempty,gt=0"`
	EstablishmentID int64     `json:"establishment_id" validate:"required,gt=0"`
	BeginDate       time.Time `json:"begin_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
}

type UpdateRequest struct {
	EstablishmentID *int64     `json:"establishment_id" validate:"omitempty,gt=0"`
	BeginDate       *time.Time `json:"begin_date"`
	EndDate         *time.Time `json:"end_date"`
}
