package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string `validate:"required"`
	Capacity *int   `validate:"omitempty,min=1"`
	Status   string `validate:"omitempty,oneof=pending online"`
}

func TestValidate(t *testing.T) {
	zero := 0
	one := 1

	assert.Nil(t, Validate(sample{Name: "agility", Capacity: &one}))
	assert.Nil(t, Validate(sample{Name: "agility"}))

	errs := Validate(sample{Capacity: &zero, Status: "done"})
	assert.Equal(t, map[string]string{
		"Name":     "required",
		"Capacity": "min",
		"Status":   "oneof",
	}, errs)
}
