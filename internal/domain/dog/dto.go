package dog

import "time"

type CreateRequest struct {
	OwnerID         *int64     `json:"owner_id" validate:"omitempty,gt=0"`
	EstablishmentID int64      `json:"establishment_id" validate:"required,gt=0"`
	Name            string     `json:"name" validate:"required,max=100"`
	Breed           string     `json:"breed" validate:"max=100"`
	Gender          Gender     `json:"gender" validate:"omitempty,oneof=male female"`
	Birthday        *time.Time `json:"birthday"`
	Weight          *float64   `json:"weight" validate:"omitempty,gt=0"`
	Height          *float64   `json:"height" validate:"omitempty,gt=0"`
	ChipID          string     `json:"chip_id" validate:"max=50"`
}

type UpdateRequest struct {
	EstablishmentID *int64     `json:"establishment_id" validate:"omitempty,gt=0"`
	Name            *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Breed           *string    `json:"breed" validate:"omitempty,max=100"`
	Gender          *Gender    `json:"gender" validate:"omitempty,oneof=male female"`
	Birthday        *time.Time `json:"birthday"`
	Weight          *float64   `json:"weight" validate:"omitempty,gt=0"`
	Height          *float64   `json:"height" validate:"omitempty,gt=0"`
	ChipID          *string    `json:"chip_id" validate:"omitempty,max=50"`
}
