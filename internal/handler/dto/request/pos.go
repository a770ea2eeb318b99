package request

import (
	"campuscoffee/internal/usecase/commands"
)

type PosRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=2000"`
	Kind        string `json:"kind" binding:"required,oneof=cafe bakery vending_machine library"`
	Campus      string `json:"campus" binding:"required"`
	Street      string `json:"street" binding:"required"`
	HouseNumber string `json:"house_number" binding:"required"`
	PostalCode  string `json:"postal_code" binding:"required,len=5"`
}

func (r *PosRequest) ToInput() commands.PosInput {
	return commands.PosInput{
		Name:        r.Name,
		Description: r.Description,
		Kind:        r.Kind,
		Campus:      r.Campus,
		Street:      r.Street,
		HouseNumber: r.HouseNumber,
		PostalCode:  r.PostalCode,
	}
}
