package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/repository"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, kode_toko, kode_cabang, nama_toko, nama_cabang, username, hashed_password, role, created_at, updated_at`

// AccountRepo implements the AccountRepository port on PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository builds the persistence adapter for accounts.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persists a new account and returns its identifier.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) (string, error) {
	query := `
		INSERT INTO users (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.KodeToko, a.KodeCabang, a.NamaToko, a.NamaCabang,
		a.Username, a.HashedPassword, a.Role, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrValidation
		}
		return "", fmt.Errorf("insert account: %w", err)
	}
	return a.ID, nil
}

// GetByID fetches one account; (nil, nil) when absent.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1`
	a, err := r.scanOne(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return a, nil
}

// FindOne fetches the single account matching the filter chain; (nil, nil)
// when nothing matches.
func (r *AccountRepo) FindOne(ctx context.Context, filters []tenant.Filter) (*entity.Account, error) {
	where, args, err := whereClause(filters, 1)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	query := `SELECT ` + accountColumns + ` FROM users ` + where + ` LIMIT 1`
	a, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	return a, nil
}

// Update applies a partial update; nil patch fields keep their stored value.
func (r *AccountRepo) Update(ctx context.Context, id string, patch entity.AccountPatch) error {
	sets := make([]string, 0, 7)
	args := []any{id}
	add := func(col string, v *string) {
		if v != nil {
			args = append(args, *v)
			sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}
	add("kode_toko", patch.KodeToko)
	add("kode_cabang", patch.KodeCabang)
	add("nama_toko", patch.NamaToko)
	add("nama_cabang", patch.NamaCabang)
	add("username", patch.Username)
	add("hashed_password", patch.HashedPassword)
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $1", strings.Join(sets, ", "))
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete removes an account by identifier.
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (r *AccountRepo) scanOne(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(
		&a.ID, &a.KodeToko, &a.KodeCabang, &a.NamaToko, &a.NamaCabang,
		&a.Username, &a.HashedPassword, &a.Role, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
