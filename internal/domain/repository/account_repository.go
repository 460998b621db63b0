package repository

import (
	"context"

	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

// AccountRepository is the persistence port for login principals (the
// identity store). Filters are conjunctive equality conditions; FindOne
// returns (nil, nil) when nothing matches — absence is not an error at this
// layer.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	FindOne(ctx context.Context, filters []tenant.Filter) (*entity.Account, error)
	Update(ctx context.Context, id string, patch entity.AccountPatch) error
	Delete(ctx context.Context, id string) error
}
