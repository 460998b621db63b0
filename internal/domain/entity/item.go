package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry owned by a store and optionally by one of its
// branches. An empty KodeCabang means the item belongs to the store as a
// whole, not to no branch.
type Item struct {
	ID         string
	KodeToko   string
	KodeCabang string
	Name       string
	Price      decimal.Decimal
	ImageURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemPatch is a partial update with merge semantics. Nil fields keep their
// stored value.
type ItemPatch struct {
	Name       *string
	Price      *decimal.Decimal
	ImageURL   *string
	KodeCabang *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.ImageURL == nil && p.KodeCabang == nil
}
