package usecase_test

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/tokopos/tokopos-api/internal/domain/entity"
	"github.com/tokopos/tokopos-api/internal/domain/tenant"
)

// In-memory fakes applying filter chains the way the real store does.

func fieldValue(kodeToko, kodeCabang string, f tenant.Filter) string {
	switch f.Field {
	case tenant.FieldStoreCode:
		return kodeToko
	case tenant.FieldBranchCode:
		return kodeCabang
	}
	return ""
}

func match(kodeToko, kodeCabang string, filters []tenant.Filter) bool {
	for _, f := range filters {
		if fieldValue(kodeToko, kodeCabang, f) != f.Value {
			return false
		}
	}
	return true
}

type fakeItemRepo struct {
	items []*entity.Item
}

func (f *fakeItemRepo) Create(_ context.Context, item *entity.Item) (string, error) {
	f.items = append(f.items, item)
	return item.ID, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) List(_ context.Context, filters []tenant.Filter) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range f.items {
		if match(it.KodeToko, it.KodeCabang, filters) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, id string, patch entity.ItemPatch) error {
	for _, it := range f.items {
		if it.ID == id {
			if patch.Name != nil {
				it.Name = *patch.Name
			}
			if patch.Price != nil {
				it.Price = *patch.Price
			}
			if patch.ImageURL != nil {
				it.ImageURL = *patch.ImageURL
			}
			if patch.KodeCabang != nil {
				it.KodeCabang = *patch.KodeCabang
			}
			return nil
		}
	}
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id string) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) (string, error) {
	f.orders = append(f.orders, order)
	return order.ID, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) List(_ context.Context, filters []tenant.Filter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if match(o.KodeToko, o.KodeCabang, filters) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tanggal.After(out[j].Tanggal) })
	return out, nil
}

type fakeBlobStore struct {
	uploads int
	fail    bool
}

func (f *fakeBlobStore) Upload(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.fail {
		return "", errors.New("blob: upload failed")
	}
	f.uploads++
	return "https://blobs.example/tokopos-images/" + objectName, nil
}

type fakeReceiptGenerator struct{}

func (fakeReceiptGenerator) GenerateReceiptPDF(_ context.Context, _ *entity.Order) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}
