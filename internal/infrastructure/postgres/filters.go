package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

// columnFor maps the domain's store field names onto the columns shared by
// the users, items and orders tables.
var columnFor = map[string]string{
	tenant.FieldStoreCode:  "kode_toko",
	tenant.FieldBranchCode: "kode_cabang",
}

// whereClause translates a conjunctive filter chain into a WHERE fragment
// with positional args starting at $startArg. An empty chain yields an empty
// fragment. Unknown fields are an error rather than a silently unscoped
// query.
func whereClause(filters []tenant.Filter, startArg int) (string, []any, error) {
	if len(filters) == 0 {
		return "", nil, nil
	}
	conds := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for i, f := range filters {
		col, ok := columnFor[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", f.Field)
		}
		conds = append(conds, fmt.Sprintf("%s = $%d", col, startArg+i))
		args = append(args, f.Value)
	}
	return "WHERE " + strings.Join(conds, " AND "), args, nil
}

// isUniqueViolation reports whether err is a unique-constraint violation
// (SQLSTATE 23505). Username uniqueness is not enforced today; this exists
// so an operator-added unique index surfaces cleanly instead of as a 500.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}
