package activity

type CreateRequest struct {
	EstablishmentID int64   `json:"establishment_id" validate:"required,gt=0"`
	Title           string  `json:"title" validate:"required,max=150"`
	Description     string  `json:"description" validate:"max=2000"`
	Image           string  `json:"image" validate:"omitempty,url"`
	Color           string  `json:"color" validate:"omitempty,hexcolor"`
	Duration        int     `json:"duration" validate:"required,gt=0,lte=1440"`
	Price           float64 `json:"price" validate:"gte=0"`
}

type UpdateRequest struct {
	EstablishmentID *int64   `json:"establishment_id" validate:"omitempty,gt=0"`
	Title           *string  `json:"title" validate:"omitempty,min=1,max=150"`
	Description     *string  `json:"description" validate:"omitempty,max=2000"`
	Image           *string  `json:"image" validate:"omitempty,url"`
	Color           *string  `json:"color" validate:"omitempty,hexcolor"`
	Duration        *int     `json:"duration" validate:"omitempty,gt=0,lte=1440"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
}
