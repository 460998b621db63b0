package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/application/ports"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/repository"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

// ItemUseCase catalog CRUD with tenant-scoped reads. Images go to the blob
// store first; only the resulting public URL is persisted.
type ItemUseCase struct {
	items repository.ItemRepository
	blobs ports.BlobStore
}

// NewItemUseCase builds the use case.
func NewItemUseCase(items repository.ItemRepository, blobs ports.BlobStore) *ItemUseCase {
	return &ItemUseCase{items: items, blobs: blobs}
}

// Create uploads the image and persists the item. If the persist fails after
// the upload, the attempt is abandoned; nothing references the orphan object.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest, image io.Reader, size int64, contentType string) (string, error) {
	if in.Name == "" || in.KodeToko == "" || image == nil {
		return "", domain.ErrValidation
	}

	objectName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.New().String())
	imageURL, err := uc.blobs.Upload(ctx, objectName, image, size, contentType)
	if err != nil {
		return "", err
	}

	now := time.Now()
	item := &entity.Item{
		ID:         uuid.New().String(),
		KodeToko:   in.KodeToko,
		KodeCabang: in.KodeCabang,
		Name:       in.Name,
		Price:      in.Price,
		ImageURL:   imageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return uc.items.Create(ctx, item)
}

// List returns the catalog scoped to the caller's tenant context. An empty
// result is a normal empty list.
func (uc *ItemUseCase) List(ctx context.Context, kodeToko, kodeCabang string) ([]dto.ItemResponse, error) {
	kodeToko, err := tenant.RequireStoreCode(kodeToko)
	if err != nil {
		return nil, err
	}
	list, err := uc.items.List(ctx, tenant.ScopeResource(kodeToko, kodeCabang))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toItemResponse(item))
	}
	return out, nil
}

// GetByID returns one item.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Update applies a partial update with merge semantics.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (string, error) {
	if in.IsEmpty() {
		return "", domain.ErrValidation
	}
	existing, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", domain.ErrNotFound
	}
	patch := entity.ItemPatch{
		Name:       in.Name,
		Price:      in.Price,
		ImageURL:   in.ImageURL,
		KodeCabang: in.KodeCabang,
	}
	if err := uc.items.Update(ctx, id, patch); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes an item by identifier.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.items.Delete(ctx, id)
}

func toItemResponse(item *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:         item.ID,
		KodeToko:   item.KodeToko,
		KodeCabang: item.KodeCabang,
		Name:       item.Name,
		Price:      item.Price,
		ImageURL:   item.ImageURL,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}
