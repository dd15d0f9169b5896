package reservation

type CreateRequest struct {
	SessionID int64 `json:"session_id" validate:"required,gt=0"`
	DogID     int64 `json:"dog_id" validate:"required,gt=0"`
}

// UpdateRequest is merged as is; approval is not re-derived from capacity.
type UpdateRequest struct {
	SessionID  *int64 `json:"session_id" validate:"omitempty,gt=0"`
	DogID      *int64 `json:"dog_id" validate:"omitempty,gt=0"`
	IsApproved *bool  `json:"is_approved"`
}
