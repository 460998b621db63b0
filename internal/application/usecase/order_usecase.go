package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/application/ports"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/repository"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

// OrderUseCase transaction creation, tenant-scoped listing and receipt
// rendering. Listing an empty scope is NotFound, unlike the catalog; that
// asymmetry is load-bearing for existing clients.
type OrderUseCase struct {
	orders   repository.OrderRepository
	receipts ports.ReceiptGenerator
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(orders repository.OrderRepository, receipts ports.ReceiptGenerator) *OrderUseCase {
	return &OrderUseCase{orders: orders, receipts: receipts}
}

// Create persists a new order. Tanggal defaults to now; a zero total is
// computed from the lines.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (string, error) {
	if in.KodeToko == "" {
		return "", domain.ErrValidation
	}

	tanggal := time.Now()
	if in.Tanggal != nil {
		tanggal = *in.Tanggal
	}

	lines := make([]entity.OrderLine, 0, len(in.Lines))
	computed := decimal.Zero
	for _, l := range in.Lines {
		subtotal := l.Price.Mul(decimal.NewFromInt(l.Qty))
		computed = computed.Add(subtotal)
		lines = append(lines, entity.OrderLine{
			Name:     l.Name,
			Qty:      l.Qty,
			Price:    l.Price,
			Subtotal: subtotal,
		})
	}
	total := in.Total
	if total.IsZero() {
		total = computed
	}

	order := &entity.Order{
		ID:               uuid.New().String(),
		KodeToko:         in.KodeToko,
		KodeCabang:       in.KodeCabang,
		Tanggal:          tanggal,
		Total:            total,
		MetodePembayaran: in.MetodePembayaran,
		Lines:            lines,
	}
	return uc.orders.Create(ctx, order)
}

// List returns orders scoped to the caller's tenant context, newest first.
// Zero matches is a NotFound outcome, not an empty success.
func (uc *OrderUseCase) List(ctx context.Context, kodeToko, kodeCabang string) ([]dto.OrderResponse, error) {
	kodeToko, err := tenant.RequireStoreCode(kodeToko)
	if err != nil {
		return nil, err
	}
	list, err := uc.orders.List(ctx, tenant.ScopeResource(kodeToko, kodeCabang))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, order := range list {
		out = append(out, toOrderResponse(order))
	}
	return out, nil
}

// GetByID returns one order.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// Receipt renders the printable struk for one order.
func (uc *OrderUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateReceiptPDF(ctx, order)
}

func toOrderResponse(order *entity.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{
			Name:     l.Name,
			Qty:      l.Qty,
			Price:    l.Price,
			Subtotal: l.Subtotal,
		})
	}
	return dto.OrderResponse{
		ID:               order.ID,
		KodeToko:         order.KodeToko,
		KodeCabang:       order.KodeCabang,
		Tanggal:          order.Tanggal,
		Total:            order.Total,
		MetodePembayaran: order.MetodePembayaran,
		Lines:            lines,
	}
}
