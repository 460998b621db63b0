package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/application/usecase"
	"github.com/tokopos/tokopos-api/internal/domain"
)

func seedItems(t *testing.T, uc *usecase.ItemUseCase) {
	t.Helper()
	ctx := context.Background()
	for _, in := range []dto.CreateItemRequest{
		{KodeToko: "TK1", Name: "Kopi Susu", Price: decimal.NewFromInt(18000)},
		{KodeToko: "TK1", KodeCabang: "CB1", Name: "Es Teh", Price: decimal.NewFromInt(8000)},
		{KodeToko: "TK2", Name: "Roti Bakar", Price: decimal.NewFromInt(15000)},
	} {
		_, err := uc.Create(ctx, in, strings.NewReader("img"), 3, "image/png")
		require.NoError(t, err)
	}
}

func TestItemCreate_UploadsThenPersists(t *testing.T) {
	repo := &fakeItemRepo{}
	blobs := &fakeBlobStore{}
	uc := usecase.NewItemUseCase(repo, blobs)

	id, err := uc.Create(context.Background(), dto.CreateItemRequest{
		KodeToko: "TK1", Name: "Kopi Susu", Price: decimal.NewFromInt(18000),
	}, strings.NewReader("img"), 3, "image/png")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, blobs.uploads)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Contains(t, stored.ImageURL, "https://blobs.example/")
}

func TestItemCreate_Validation(t *testing.T) {
	uc := usecase.NewItemUseCase(&fakeItemRepo{}, &fakeBlobStore{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateItemRequest{KodeToko: "TK1"}, strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, domain.ErrValidation, "name required")

	_, err = uc.Create(ctx, dto.CreateItemRequest{KodeToko: "TK1", Name: "Kopi"}, nil, 0, "")
	assert.ErrorIs(t, err, domain.ErrValidation, "image file required")
}

func TestItemCreate_BlobFailureAbandonsPersist(t *testing.T) {
	repo := &fakeItemRepo{}
	uc := usecase.NewItemUseCase(repo, &fakeBlobStore{fail: true})

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{
		KodeToko: "TK1", Name: "Kopi",
	}, strings.NewReader("img"), 3, "image/png")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)

	list, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list, "nothing may be persisted when the upload fails")
}

func TestItemList_ScopedToStore(t *testing.T) {
	uc := usecase.NewItemUseCase(&fakeItemRepo{}, &fakeBlobStore{})
	seedItems(t, uc)

	out, err := uc.List(context.Background(), "TK1", "")
	require.NoError(t, err)
	require.Len(t, out, 2, "store scope covers all branches of the store")
	for _, item := range out {
		assert.Equal(t, "TK1", item.KodeToko)
	}
}

func TestItemList_ScopedToBranch(t *testing.T) {
	uc := usecase.NewItemUseCase(&fakeItemRepo{}, &fakeBlobStore{})
	seedItems(t, uc)

	out, err := uc.List(context.Background(), "TK1", "CB1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Es Teh", out[0].Name)
}

func TestItemList_EmptyScopeIsEmptySuccess(t *testing.T) {
	uc := usecase.NewItemUseCase(&fakeItemRepo{}, &fakeBlobStore{})

	out, err := uc.List(context.Background(), "TK9", "")
	require.NoError(t, err, "an empty catalog is a normal empty list, not NotFound")
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestItemList_MissingStoreCode(t *testing.T) {
	uc := usecase.NewItemUseCase(&fakeItemRepo{}, &fakeBlobStore{})

	_, err := uc.List(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemUpdate_MergeSemantics(t *testing.T) {
	repo := &fakeItemRepo{}
	uc := usecase.NewItemUseCase(repo, &fakeBlobStore{})
	ctx := context.Background()

	id, err := uc.Create(ctx, dto.CreateItemRequest{
		KodeToko: "TK1", Name: "Kopi Susu", Price: decimal.NewFromInt(18000),
	}, strings.NewReader("img"), 3, "image/png")
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(20000)
	_, err = uc.Update(ctx, id, dto.UpdateItemRequest{Price: &newPrice})
	require.NoError(t, err)

	stored, _ := repo.GetByID(ctx, id)
	assert.True(t, stored.Price.Equal(newPrice))
	assert.Equal(t, "Kopi Susu", stored.Name, "unsupplied fields stay untouched")
}

func TestItemUpdate_EmptyPatch(t *testing.T) {
	uc := usecase.NewItemUseCase(&fakeItemRepo{}, &fakeBlobStore{})

	_, err := uc.Update(context.Background(), "any", dto.UpdateItemRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemGetByID_NotFound(t *testing.T) {
	uc := usecase.NewItemUseCase(&fakeItemRepo{}, &fakeBlobStore{})

	_, err := uc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
