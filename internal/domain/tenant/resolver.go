// Package tenant classifies login codes and builds the filter chains that
// scope every account lookup and resource read to one store (toko) and,
// optionally, one of its branches (cabang).
package tenant

import (
	"strings"

	"github.com/tokopos/tokopos-api/internal/domain"
)

// branchPrefix is the fixed, case-sensitive convention: a code is a branch
// code iff its first two characters are exactly "CB". Not configurable.
const branchPrefix = "CB"

// Store field names the filters refer to. Adapters translate these to their
// own column/attribute names.
const (
	FieldStoreCode  = "kodeToko"
	FieldBranchCode = "kodeCabang"
)

// Class is the result of classifying a tenant code.
type Class string

const (
	ClassStore  Class = "store"
	ClassBranch Class = "branch"
)

// Filter is one equality condition on a named store field. A chain of
// filters is conjunctive (AND).
type Filter struct {
	Field string
	Value string
}

// Classify decides whether code identifies a store or a branch. Codes
// shorter than two characters fall back to store; that is the convention,
// not an error.
func Classify(code string) Class {
	if strings.HasPrefix(code, branchPrefix) {
		return ClassBranch
	}
	return ClassStore
}

// FiltersFor builds the account-lookup filter chain for a classified code:
// stores match on kodeToko, branches on kodeCabang.
func FiltersFor(class Class, code string) []Filter {
	if class == ClassBranch {
		return []Filter{{Field: FieldBranchCode, Value: code}}
	}
	return []Filter{{Field: FieldStoreCode, Value: code}}
}

// ScopeResource builds the filter chain for catalog/order reads: always
// kodeToko == kodeToko, plus kodeCabang == kodeCabang only when the caller
// supplied a non-empty branch code. An absent branch code means "all
// branches of this store".
func ScopeResource(kodeToko, kodeCabang string) []Filter {
	filters := []Filter{{Field: FieldStoreCode, Value: kodeToko}}
	if kodeCabang != "" {
		filters = append(filters, Filter{Field: FieldBranchCode, Value: kodeCabang})
	}
	return filters
}

// RequireStoreCode rejects scoped reads with no store code; there is no
// "list everything across all tenants" mode.
func RequireStoreCode(kodeToko string) (string, error) {
	if kodeToko == "" {
		return "", domain.ErrValidation
	}
	return kodeToko, nil
}
