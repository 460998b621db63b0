package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/repository"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
	"github.com/tokopos/tokopos-api/pkg/vault"
)

// AuthUseCase registration and login. Stateless across calls: login returns
// a caller-held identity record, never a session.
type AuthUseCase struct {
	accounts repository.AccountRepository
	vault    *vault.CredentialVault
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(accounts repository.AccountRepository, v *vault.CredentialVault) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, vault: v}
}

// RegisterStore creates a store-owner account. The role is derived from the
// variant, never taken from the caller.
func (uc *AuthUseCase) RegisterStore(ctx context.Context, in dto.StoreRegistration) (string, error) {
	if in.Username == "" || in.Password == "" || in.KodeToko == "" || in.NamaToko == "" {
		return "", domain.ErrValidation
	}
	digest, err := uc.vault.Hash(in.Password)
	if err != nil {
		return "", err
	}
	now := time.Now()
	account := &entity.Account{
		ID:             uuid.New().String(),
		KodeToko:       in.KodeToko,
		NamaToko:       in.NamaToko,
		Username:       in.Username,
		HashedPassword: digest,
		Role:           entity.RoleOwner,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return uc.accounts.Create(ctx, account)
}

// RegisterBranch creates a branch account under a store. KodeToko (the
// parent) may be empty at registration time.
func (uc *AuthUseCase) RegisterBranch(ctx context.Context, in dto.BranchRegistration) (string, error) {
	if in.Username == "" || in.Password == "" || in.KodeCabang == "" || in.NamaCabang == "" {
		return "", domain.ErrValidation
	}
	digest, err := uc.vault.Hash(in.Password)
	if err != nil {
		return "", err
	}
	now := time.Now()
	account := &entity.Account{
		ID:             uuid.New().String(),
		KodeToko:       in.KodeToko,
		KodeCabang:     in.KodeCabang,
		NamaCabang:     in.NamaCabang,
		Username:       in.Username,
		HashedPassword: digest,
		Role:           entity.RoleBranch,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return uc.accounts.Create(ctx, account)
}

// Login verifies the (kode, username, password) triple. The code is
// classified first: "CB"-prefixed codes look up branch accounts, everything
// else store accounts. A missing account, a username mismatch and a password
// mismatch all produce the same ErrUnauthorized so the caller cannot tell
// which factor failed.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Kode == "" || in.Username == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}

	class := tenant.Classify(in.Kode)
	account, err := uc.accounts.FindOne(ctx, tenant.FiltersFor(class, in.Kode))
	if err != nil {
		return nil, err
	}
	if account == nil || account.Username != in.Username {
		return nil, domain.ErrUnauthorized
	}
	if !uc.vault.Verify(in.Password, account.HashedPassword) {
		return nil, domain.ErrUnauthorized
	}

	data := dto.AccountData{
		KodeToko:   account.KodeToko,
		NamaToko:   account.NamaToko,
		KodeCabang: account.KodeCabang,
		NamaCabang: account.NamaCabang,
		Username:   account.Username,
		Role:       account.Role,
	}
	// Branch logins are not shown the parent store's display name; the store
	// code itself stays visible.
	if account.Role == entity.RoleBranch {
		data.NamaToko = ""
	}
	return &dto.LoginResponse{ID: account.ID, Data: data}, nil
}
