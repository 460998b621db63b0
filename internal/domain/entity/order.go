package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one completed transaction, scoped to the tenant that created it.
type Order struct {
	ID               string
	KodeToko         string
	KodeCabang       string
	Tanggal          time.Time // transaction date; lists are sorted by it, newest first
	Total            decimal.Decimal
	MetodePembayaran string
	Lines            []OrderLine
}

// OrderLine is one sold item within an order.
type OrderLine struct {
	Name     string          `json:"name"`
	Qty      int64           `json:"qty"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
