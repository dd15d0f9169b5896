package payment

import "time"

type Status string

const (
	StatusCreated Status = "created"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// Payment is one checkout attempt for a reservation. InvID is the invoice
// number shared with the gateway; Amount keeps the exact decimal text that
// was signed.
type Payment struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	ReservationID int64      `gorm:"index;not null" json:"reservation_id"`
	InvID         int64      `gorm:"uniqueIndex;not null" json:"inv_id"`
	Amount        string     `gorm:"type:varchar(32);not null" json:"amount"`
	Description   string     `gorm:"type:text" json:"description"`
	Status        Status     `gorm:"type:varchar(20);default:'created';index" json:"status"`
	CheckoutURL   string     `gorm:"type:text" json:"checkout_url"`
	ResultRawBody string     `gorm:"type:text" json:"-"`
	FailureReason string     `gorm:"type:text" json:"failure_reason,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
