package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/repository"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, kode_toko, kode_cabang, name, price, image_url, created_at, updated_at`

// ItemRepo implements the ItemRepository port on PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository builds the persistence adapter for catalog items.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// Create persists a new item and returns its identifier.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) (string, error) {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.KodeToko, item.KodeCabang, item.Name, item.Price,
		item.ImageURL, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert item: %w", err)
	}
	return item.ID, nil
}

// GetByID fetches one item; (nil, nil) when absent.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var item entity.Item
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.KodeToko, &item.KodeCabang, &item.Name, &item.Price,
		&item.ImageURL, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &item, nil
}

// List returns items matching the filter chain. Result order is not part of
// the contract.
func (r *ItemRepo) List(ctx context.Context, filters []tenant.Filter) ([]*entity.Item, error) {
	where, args, err := whereClause(filters, 1)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	query := `SELECT ` + itemColumns + ` FROM items ` + where
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var item entity.Item
		if err := rows.Scan(
			&item.ID, &item.KodeToko, &item.KodeCabang, &item.Name, &item.Price,
			&item.ImageURL, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Update applies a partial update with merge semantics.
func (r *ItemRepo) Update(ctx context.Context, id string, patch entity.ItemPatch) error {
	sets := make([]string, 0, 4)
	args := []any{id}
	addStr := func(col string, v *string) {
		if v != nil {
			args = append(args, *v)
			sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}
	addStr("name", patch.Name)
	addStr("image_url", patch.ImageURL)
	addStr("kode_cabang", patch.KodeCabang)
	if patch.Price != nil {
		args = append(args, *patch.Price)
		sets = append(sets, fmt.Sprintf("price = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf("UPDATE items SET %s WHERE id = $1", strings.Join(sets, ", "))
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete removes an item by identifier.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
