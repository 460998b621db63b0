package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		code string
		want tenant.Class
	}{
		{"CB001", tenant.ClassBranch},
		{"CB", tenant.ClassBranch},
		{"TK001", tenant.ClassStore},
		{"C", tenant.ClassStore},  // shorter than the prefix: silent store fallback
		{"cb001", tenant.ClassStore}, // case-sensitive
		{"", tenant.ClassStore},
		{"XCB01", tenant.ClassStore}, // prefix must be at the start
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tenant.Classify(tc.code), "code %q", tc.code)
	}
}

func TestFiltersFor(t *testing.T) {
	storeFilters := tenant.FiltersFor(tenant.ClassStore, "TK001")
	require.Len(t, storeFilters, 1)
	assert.Equal(t, tenant.Filter{Field: tenant.FieldStoreCode, Value: "TK001"}, storeFilters[0])

	branchFilters := tenant.FiltersFor(tenant.ClassBranch, "CB001")
	require.Len(t, branchFilters, 1)
	assert.Equal(t, tenant.Filter{Field: tenant.FieldBranchCode, Value: "CB001"}, branchFilters[0])
}

func TestScopeResource_StoreOnly(t *testing.T) {
	filters := tenant.ScopeResource("TK1", "")
	require.Len(t, filters, 1, "absent branch code means all branches, not an extra condition")
	assert.Equal(t, tenant.FieldStoreCode, filters[0].Field)
	assert.Equal(t, "TK1", filters[0].Value)
}

func TestScopeResource_StoreAndBranch(t *testing.T) {
	filters := tenant.ScopeResource("TK1", "CB1")
	require.Len(t, filters, 2)
	assert.Equal(t, tenant.Filter{Field: tenant.FieldStoreCode, Value: "TK1"}, filters[0])
	assert.Equal(t, tenant.Filter{Field: tenant.FieldBranchCode, Value: "CB1"}, filters[1])
}

func TestRequireStoreCode(t *testing.T) {
	code, err := tenant.RequireStoreCode("TK1")
	require.NoError(t, err)
	assert.Equal(t, "TK1", code)

	_, err = tenant.RequireStoreCode("")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
