package session

import "time"

type CreateRequest struct {
	EducatorID      *int64    `json:"educator_id" validate:"omitempty,gt=0"`
	ActivityID      int64     `json:"activity_id" validate:"required,gt=0"`
	EstablishmentID int64     `json:"establishment_id" validate:"required,gt=0"`
	MaximumCapacity *int      `json:"maximum_capacity" validate:"omitempty,min=1"`
	BeginDate       time.Time `json:"begin_date" validate:"required"`
	Status          *Status   `json:"status" validate:"omitempty,oneof=pending online postponed canceled"`
}

// UpdateRequest is a partial update. The end date and the report are not
// part of it: the first is derived and the second has its own endpoint.
type UpdateRequest struct {
	EducatorID      *int64     `json:"educator_id" validate:"omitempty,gt=0"`
	ActivityID      *int64     `json:"activity_id" validate:"omitempty,gt=0"`
	EstablishmentID *int64     `json:"establishment_id" validate:"omitempty,gt=0"`
	MaximumCapacity *int       `json:"maximum_capacity" validate:"omitempty,min=1"`
	BeginDate       *time.Time `json:"begin_date"`
	Status          *Status    `json:"status" validate:"omitempty,oneof=pending online postponed canceled"`
}

type ReportRequest struct {
	Report string `json:"report" validate:"required,max=10000"`
}

// FindQuery holds the list filters. Only the first of educator, activity and
// establishment that is set is applied.
type FindQuery struct {
	EducatorID      *int64
	ActivityID      *int64
	EstablishmentID *int64
	Date            *time.Time
	Reserved        bool
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
