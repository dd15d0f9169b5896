package session

import (
	"time"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/activity"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/establishment"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/user"
)

// Status is advisory: any status can follow any other.
type Status string

const (
	StatusPending   Status = "pending"
	StatusOnline    Status = "online"
	StatusPostponed Status = "postponed"
	StatusCanceled  Status = "canceled"
)

const DefaultMaximumCapacity = 1

// Session is one scheduled occurrence of an activity led by an educator.
// EndDate is always BeginDate plus the activity duration and is only written
// by this package.
type Session struct {
	ID              int64     `json:"id"`
	EducatorID      int64     `json:"educator_id"`
	ActivityID      int64     `json:"activity_id"`
	EstablishmentID int64     `json:"establishment_id"`
	Status          Status    `json:"status"`
	MaximumCapacity int       `json:"maximum_capacity"`
	Report          string    `json:"report,omitempty"`
	BeginDate       time.Time `json:"begin_date"`
	EndDate         time.Time `json:"end_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// View is a session with its educator, activity and establishment resolved.
// A relation is nil when the referenced row no longer exists.
type View struct {
	*Session
	Educator      *user.User                   `json:"educator"`
	Activity      *activity.Activity           `json:"activity"`
	Establishment *establishment.Establishment `json:"establishment"`
}
