package dog

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Dog struct {
	ID              int64      `gorm:"primaryKey" json:"id"`
	OwnerID         int64      `gorm:"index;not null" json:"owner_id"`
	EstablishmentID int64      `gorm:"index;not null" json:"establishment_id"`
	Name            string     `gorm:"not null" json:"name"`
	Breed           string     `json:"breed,omitempty"`
	Gender          Gender     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Birthday        *time.Time `json:"birthday,omitempty"`
	Weight          *float64   `json:"weight,omitempty"`
	Height          *float64   `json:"height,omitempty"`
	ChipID          string     `gorm:"column:chip_id" json:"chip_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Dog) TableName() string { return "dogs" }

type Filter struct {
	OwnerID         *int64
	EstablishmentID *int64
}
