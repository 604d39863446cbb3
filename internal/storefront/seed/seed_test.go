package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/rahulmehra/fashionstore/internal/storefront/catalog"
	"github.com/rahulmehra/fashionstore/internal/storefront/storage"
)

type fakeProductStore struct {
	products map[string]catalog.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[string]catalog.Product)}
}

func (s *fakeProductStore) CreateProduct(_ context.Context, p catalog.Product) (catalog.Product, error) {
	if _, ok := s.products[p.ID]; ok {
		return catalog.Product{}, fmt.Errorf("product %s: %w", p.ID, storage.ErrAlreadyExists)
	}
	s.products[p.ID] = p
	return p, nil
}

func (s *fakeProductStore) UpdateProduct(context.Context, catalog.Product) error { return nil }
func (s *fakeProductStore) DeleteProduct(context.Context, string) error          { return nil }

func (s *fakeProductStore) GetProduct(_ context.Context, id string) (catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *fakeProductStore) ListVisibleProducts(context.Context) ([]catalog.Product, error) {
	return nil, nil
}

func (s *fakeProductStore) ListAllProducts(context.Context) ([]catalog.Product, error) {
	return nil, nil
}

func TestSampleProductsAreValid(t *testing.T) {
	products := SampleProducts()
	if len(products) == 0 {
		t.Fatal("expected sample products")
	}
	for _, p := range products {
		if p.ID == "" {
			t.Fatalf("sample product %s has no fixed id", p.Name)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("sample product %s invalid: %v", p.Name, err)
		}
	}
}

func TestRunSeedsOnce(t *testing.T) {
	store := newFakeProductStore()
	ctx := context.Background()

	if err := Run(ctx, store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(store.products) != len(SampleProducts()) {
		t.Fatalf("expected %d products, got %d", len(SampleProducts()), len(store.products))
	}

	if err := Run(ctx, store); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if len(store.products) != len(SampleProducts()) {
		t.Fatalf("reseed duplicated products, got %d", len(store.products))
	}
}
