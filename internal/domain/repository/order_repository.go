package repository

import (
	"context"

	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

// OrderRepository is the persistence port for transactions. List applies the
// caller's tenant filter chain and returns orders by tanggal descending
// (most recent first).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filters []tenant.Filter) ([]*entity.Order, error)
}
