package ports

import (
	"context"

	"github.com/tokopos/tokopos-api/internal/domain/entity"
)

// ReceiptGenerator renders the printable receipt (struk) for an order.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order) ([]byte, error)
}
