package repository

import (
	"context"

	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

// ItemRepository is the persistence port for catalog items. List applies the
// caller's tenant filter chain; result order is not significant.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context, filters []tenant.Filter) ([]*entity.Item, error)
	Update(ctx context.Context, id string, patch entity.ItemPatch) error
	Delete(ctx context.Context, id string) error
}
