package establishment

type CreateRequest struct {
	OwnerID     *int64 `json:"owner_id" validate:"omitempty,gt=0"`
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
	Address     string `json:"address" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type UpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Address     *string `json:"address" validate:"omitempty,min=1,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

type AddEmployeeRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}
