package observation

import "time"

// Observation is a note an employee writes about a dog.
type Observation struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	DogID       int64     `gorm:"index;not null" json:"dog_id"`
	AuthorID    int64     `gorm:"index;not null" json:"author_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Observation) TableName() string { return "observations" }
