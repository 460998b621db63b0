package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest one sold item within a new order.
type OrderLineRequest struct {
	Name  string          `json:"name"`
	Qty   int64           `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

// CreateOrderRequest new transaction. Tanggal defaults to now; Total, when
// zero, is computed from the lines.
type CreateOrderRequest struct {
	KodeToko         string             `json:"kodeToko"`
	KodeCabang       string             `json:"kodeCabang"`
	Tanggal          *time.Time         `json:"tanggal"`
	Total            decimal.Decimal    `json:"total"`
	MetodePembayaran string             `json:"metodePembayaran"`
	Lines            []OrderLineRequest `json:"lines"`
}

// OrderLineResponse one line of a stored order.
type OrderLineResponse struct {
	Name     string          `json:"name"`
	Qty      int64           `json:"qty"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderResponse stored order as returned to the caller.
type OrderResponse struct {
	ID               string              `json:"id"`
	KodeToko         string              `json:"kodeToko"`
	KodeCabang       string              `json:"kodeCabang,omitempty"`
	Tanggal          time.Time           `json:"tanggal"`
	Total            decimal.Decimal     `json:"total"`
	MetodePembayaran string              `json:"metodePembayaran,omitempty"`
	Lines            []OrderLineResponse `json:"lines"`
}
