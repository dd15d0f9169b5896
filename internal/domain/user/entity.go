package user

import (
	"time"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type User struct {
	ID               int64          `json:"id"`
	Firstname        string         `json:"firstname"`
	Lastname         string         `json:"lastname"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone,omitempty"`
	Avatar           string         `json:"avatar,omitempty"`
	Role             principal.Role `json:"role"`
	EstablishmentID  *int64         `json:"establishment_id,omitempty"`
	PasswordHash     string         `json:"-"`
	LastConnectionAt *time.Time     `json:"last_connection_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (u *User) IsEmployee() bool {
	return u.Role != principal.RoleClient
}

// Filter narrows List. Nil fields are ignored.
type Filter struct {
	Role            *principal.Role
	EstablishmentID *int64
}
