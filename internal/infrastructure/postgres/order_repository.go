package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/repository"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, kode_toko, kode_cabang, tanggal, total, metode_pembayaran, lines`

// OrderRepo implements the OrderRepository port on PostgreSQL. Order lines
// live in a jsonb column; the order is the document, the lines have no
// lifecycle of their own.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository builds the persistence adapter for orders.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persists a new order and returns its identifier.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) (string, error) {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return "", fmt.Errorf("marshal order lines: %w", err)
	}
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.pool.Exec(ctx, query,
		order.ID, order.KodeToko, order.KodeCabang, order.Tanggal,
		order.Total, order.MetodePembayaran, lines,
	)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return order.ID, nil
}

// GetByID fetches one order; (nil, nil) when absent.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return order, nil
}

// List returns orders matching the filter chain, by tanggal descending.
func (r *OrderRepo) List(ctx context.Context, filters []tenant.Filter) ([]*entity.Order, error) {
	where, args, err := whereClause(filters, 1)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	query := `SELECT ` + orderColumns + ` FROM orders ` + where + ` ORDER BY tanggal DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		order entity.Order
		lines []byte
	)
	err := row.Scan(
		&order.ID, &order.KodeToko, &order.KodeCabang, &order.Tanggal,
		&order.Total, &order.MetodePembayaran, &lines,
	)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		if err := json.Unmarshal(lines, &order.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal order lines: %w", err)
		}
	}
	return &order, nil
}
