package activity

import "time"

// Activity is a kind of training session offered by an establishment.
// Duration is in minutes and drives the end date of every session.
type Activity struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	EstablishmentID int64     `gorm:"index;not null" json:"establishment_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description,omitempty"`
	Image           string    `json:"image,omitempty"`
	Color           string    `json:"color,omitempty"`
	Duration        int       `gorm:"not null" json:"duration"`
	Price           float64   `gorm:"not null;default:0" json:"price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Activity) TableName() string { return "activities" }

func (a *Activity) DurationTime() time.Duration {
	return time.Duration(a.Duration) * time.Minute
}
