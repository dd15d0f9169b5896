package observation

type CreateRequest struct {
	DogID       int64  `json:"dog_id" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,max=5000"`
}

type UpdateRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1,max=5000"`
}
