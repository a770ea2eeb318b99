package response

import (
	"campuscoffee/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PosResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Campus      string `json:"campus"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// FromPosView copies the name-matching fields and converts the rest by hand.
func FromPosView(v *queries.PosView) *PosResponse {
	var resp PosResponse
	_ = copier.Copy(&resp, v)
	resp.ID = v.ID.String()
	resp.CreatedAt = v.CreatedAt.Unix()
	resp.UpdatedAt = v.UpdatedAt.Unix()
	return &resp
}

func FromPosList(items []*queries.PosView) []*PosResponse {
	res := make([]*PosResponse, len(items))
	for i, it := range items {
		res[i] = FromPosView(it)
	}
	return res
}
