package usecase

import (
	"context"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/repository"
	"github.com/tokopos/tokopos-api/pkg/vault"
)

// AccountUseCase account maintenance: partial updates and explicit deletes.
// Registration and login live in the auth use case.
type AccountUseCase struct {
	accounts repository.AccountRepository
	vault    *vault.CredentialVault
}

// NewAccountUseCase builds the use case.
func NewAccountUseCase(accounts repository.AccountRepository, v *vault.CredentialVault) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, vault: v}
}

// Update applies a partial update with merge semantics. An empty patch is a
// validation error; a supplied password is re-hashed, everything else is
// stored as given.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.UpdateAccountRequest) (string, error) {
	if in.IsEmpty() {
		return "", domain.ErrValidation
	}
	existing, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", domain.ErrNotFound
	}

	patch := entity.AccountPatch{
		KodeToko:   in.KodeToko,
		KodeCabang: in.KodeCabang,
		NamaToko:   in.NamaToko,
		NamaCabang: in.NamaCabang,
		Username:   in.Username,
	}
	if in.Password != nil {
		digest, err := uc.vault.Hash(*in.Password)
		if err != nil {
			return "", err
		}
		patch.HashedPassword = &digest
	}

	if err := uc.accounts.Update(ctx, id, patch); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes an account by identifier.
func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.accounts.Delete(ctx, id)
}
