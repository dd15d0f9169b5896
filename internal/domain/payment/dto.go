package payment

type CreateRequest struct {
	ReservationID int64  `json:"reservation_id" validate:"required,gt=0"`
	Description   string `json:"description" validate:"max=255"`
}

// ResultCallback is the form the gateway posts once the customer has paid.
type ResultCallback struct {
	OutSum    string
	InvID     int64
	Signature string
	RawBody   string
}
