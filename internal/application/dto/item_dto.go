package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest catalog item fields from the multipart form; the image
// itself travels separately as a file part.
type CreateItemRequest struct {
	KodeToko   string          `json:"kodeToko" form:"kodeToko"`
	KodeCabang string          `json:"kodeCabang" form:"kodeCabang"`
	Name       string          `json:"name" form:"name"`
	Price      decimal.Decimal `json:"price" form:"price"`
}

// ItemResponse catalog item as returned to the caller.
type ItemResponse struct {
	ID         string          `json:"id"`
	KodeToko   string          `json:"kodeToko"`
	KodeCabang string          `json:"kodeCabang,omitempty"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"imageUrl"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// UpdateItemRequest partial item update with merge semantics.
type UpdateItemRequest struct {
	Name       *string          `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	ImageURL   *string          `json:"imageUrl"`
	KodeCabang *string          `json:"kodeCabang"`
}

// IsEmpty reports whether no field was supplied.
func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Price == nil && r.ImageURL == nil && r.KodeCabang == nil
}
