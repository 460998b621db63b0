package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/tokopos-api/internal/application/auth"
	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
	"github.com/tokopos/tokopos-api/pkg/vault"
)

// fakeAccountRepo is an in-memory AccountRepository applying filter chains
// the way the real store does: every condition must match.
type fakeAccountRepo struct {
	accounts []*entity.Account
}

func (f *fakeAccountRepo) Create(_ context.Context, a *entity.Account) (string, error) {
	f.accounts = append(f.accounts, a)
	return a.ID, nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindOne(_ context.Context, filters []tenant.Filter) (*entity.Account, error) {
	for _, a := range f.accounts {
		if matches(a, filters) {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, id string, patch entity.AccountPatch) error {
	for _, a := range f.accounts {
		if a.ID == id {
			if patch.Username != nil {
				a.Username = *patch.Username
			}
			if patch.HashedPassword != nil {
				a.HashedPassword = *patch.HashedPassword
			}
			return nil
		}
	}
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id string) error {
	for i, a := range f.accounts {
		if a.ID == id {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func matches(a *entity.Account, filters []tenant.Filter) bool {
	for _, flt := range filters {
		var got string
		switch flt.Field {
		case tenant.FieldStoreCode:
			got = a.KodeToko
		case tenant.FieldBranchCode:
			got = a.KodeCabang
		}
		if got != flt.Value {
			return false
		}
	}
	return true
}

func newUseCase() (*auth.AuthUseCase, *fakeAccountRepo) {
	repo := &fakeAccountRepo{}
	return auth.NewAuthUseCase(repo, vault.New()), repo
}

func TestRegisterStore_DerivesOwnerRole(t *testing.T) {
	uc, repo := newUseCase()

	id, err := uc.RegisterStore(context.Background(), dto.StoreRegistration{
		KodeToko: "TK1", NamaToko: "Toko A", Username: "budi", Password: "rahasia",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleOwner, stored.Role)
	assert.Equal(t, "TK1", stored.KodeToko)
	assert.Equal(t, "Toko A", stored.NamaToko)
	assert.Empty(t, stored.KodeCabang)
	assert.Empty(t, stored.NamaCabang)
	assert.NotEqual(t, "rahasia", stored.HashedPassword, "plaintext must never be persisted")
}

func TestRegisterBranch_DerivesBranchRole(t *testing.T) {
	uc, repo := newUseCase()

	id, err := uc.RegisterBranch(context.Background(), dto.BranchRegistration{
		KodeToko: "TK1", KodeCabang: "CB1", NamaCabang: "Cabang A", Username: "sari", Password: "rahasia",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleBranch, stored.Role)
	assert.Equal(t, "TK1", stored.KodeToko, "branch keeps its parent store code")
	assert.Equal(t, "CB1", stored.KodeCabang)
	assert.Equal(t, "Cabang A", stored.NamaCabang)
	assert.Empty(t, stored.NamaToko)
}

func TestRegister_MissingFields(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.RegisterStore(ctx, dto.StoreRegistration{KodeToko: "TK1", NamaToko: "Toko A"})
	assert.ErrorIs(t, err, domain.ErrValidation, "missing username/password")

	_, err = uc.RegisterStore(ctx, dto.StoreRegistration{Username: "budi", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation, "missing store identity pair")

	_, err = uc.RegisterBranch(ctx, dto.BranchRegistration{KodeCabang: "CB1", Username: "budi", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation, "branch pair incomplete")
}

func TestLogin_StoreCode(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.RegisterStore(ctx, dto.StoreRegistration{
		KodeToko: "TK1", NamaToko: "Toko A", Username: "budi", Password: "rahasia",
	})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Kode: "TK1", Username: "budi", Password: "rahasia"})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	assert.Equal(t, "TK1", out.Data.KodeToko)
	assert.Equal(t, "Toko A", out.Data.NamaToko, "owner logins keep the store display name")
	assert.Equal(t, entity.RoleOwner, out.Data.Role)
}

func TestLogin_BranchCode_RedactsStoreName(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	id, err := uc.RegisterBranch(ctx, dto.BranchRegistration{
		KodeToko: "TK1", KodeCabang: "CB1", NamaCabang: "Cabang A", Username: "sari", Password: "rahasia",
	})
	require.NoError(t, err)

	// Give the stored branch record a parent store name to prove redaction.
	stored, _ := repo.GetByID(ctx, id)
	stored.NamaToko = "Toko A"

	out, err := uc.Login(ctx, dto.LoginRequest{Kode: "CB1", Username: "sari", Password: "rahasia"})
	require.NoError(t, err)
	assert.Empty(t, out.Data.NamaToko, "branch logins must not see the parent store's display name")
	assert.Equal(t, "TK1", out.Data.KodeToko, "the store code itself stays visible")
	assert.Equal(t, "Cabang A", out.Data.NamaCabang)
	assert.Equal(t, entity.RoleBranch, out.Data.Role)
}

func TestLogin_UniformUnauthorized(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.RegisterStore(ctx, dto.StoreRegistration{
		KodeToko: "TK1", NamaToko: "Toko A", Username: "budi", Password: "rahasia",
	})
	require.NoError(t, err)

	// Unknown code, wrong username and wrong password must be
	// indistinguishable.
	_, errNoCode := uc.Login(ctx, dto.LoginRequest{Kode: "TK9", Username: "budi", Password: "rahasia"})
	_, errNoUser := uc.Login(ctx, dto.LoginRequest{Kode: "TK1", Username: "joko", Password: "rahasia"})
	_, errNoPass := uc.Login(ctx, dto.LoginRequest{Kode: "TK1", Username: "budi", Password: "salah"})

	assert.ErrorIs(t, errNoCode, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoPass, domain.ErrUnauthorized)
	assert.Equal(t, errNoCode, errNoUser)
	assert.Equal(t, errNoUser, errNoPass)
}

func TestLogin_MissingInput(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "budi", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Login(ctx, dto.LoginRequest{Kode: "TK1", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Login(ctx, dto.LoginRequest{Kode: "TK1", Username: "budi"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
