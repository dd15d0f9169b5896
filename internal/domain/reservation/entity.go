package reservation

import (
	"time"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/dog"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/session"
)

// Reservation books a dog into a session. IsApproved is set once at creation
// from the session capacity and afterwards only changes through Approve or an
// explicit update.
type Reservation struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	SessionID  int64     `gorm:"index;not null" json:"session_id"`
	DogID      int64     `gorm:"index;not null" json:"dog_id"`
	IsApproved bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Reservation) TableName() string { return "reservations" }

// View is a reservation with its session and dog resolved. Either is nil
// when the referenced row has been deleted.
type View struct {
	*Reservation
	Session *session.Session `json:"session"`
	Dog     *dog.Dog         `json:"dog"`
}
