package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rahulmehra/fashionstore/internal/storefront/catalog"
	"github.com/rahulmehra/fashionstore/internal/storefront/storage"
)

func sampleProduct(name string) catalog.Product {
	original := 1499.0
	return catalog.Product{
		Name:          name,
		Brand:         "Arrow",
		Category:      "Shirts",
		Price:         999,
		OriginalPrice: &original,
		Image:         "/media/shirt.jpg",
		Sizes:         []string{"S", "M", "L"},
		Colors:        []string{"White", "Blue"},
		Stock:         8,
		Description:   "Crisp cotton shirt.",
		IsVisible:     true,
	}
}

func TestCreateProductAssignsIDAndTimestamp(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, sampleProduct("Oxford Shirt"))
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated product id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created timestamp to be set")
	}

	got, err := store.GetProduct(ctx, created.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.Name != "Oxford Shirt" || got.Brand != "Arrow" {
		t.Fatalf("unexpected stored product: %+v", got)
	}
	if got.OriginalPrice == nil || *got.OriginalPrice != 1499 {
		t.Fatalf("expected original price preserved, got %+v", got.OriginalPrice)
	}
	if len(got.Sizes) != 3 || got.Sizes[0] != "S" {
		t.Fatalf("expected ordered sizes preserved, got %+v", got.Sizes)
	}
	if len(got.Colors) != 2 || got.Colors[1] != "Blue" {
		t.Fatalf("expected ordered colors preserved, got %+v", got.Colors)
	}
}

func TestCreateProductPreservesNilOriginalPrice(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	product := sampleProduct("Plain Tee")
	product.OriginalPrice = nil

	created, err := store.CreateProduct(ctx, product)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	got, err := store.GetProduct(ctx, created.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.OriginalPrice != nil {
		t.Fatalf("expected nil original price, got %v", *got.OriginalPrice)
	}
}

func TestCreateProductRejectsInvalidRecord(t *testing.T) {
	store := openTempStore(t)

	product := sampleProduct("")
	if _, err := store.CreateProduct(context.Background(), product); err == nil {
		t.Fatal("expected validation error for empty name")
	}
}

func TestCreateProductDuplicateIDReturnsAlreadyExists(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	product := sampleProduct("Oxford Shirt")
	product.ID = "fixed-id"
	if _, err := store.CreateProduct(ctx, product); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := store.CreateProduct(ctx, product); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateProductReplacesFields(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, sampleProduct("Oxford Shirt"))
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	created.Price = 799
	created.OriginalPrice = nil
	created.Stock = 2
	created.IsVisible = false
	created.Colors = []string{"Black"}
	if err := store.UpdateProduct(ctx, created); err != nil {
		t.Fatalf("update product: %v", err)
	}

	got, err := store.GetProduct(ctx, created.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.Price != 799 || got.OriginalPrice != nil || got.Stock != 2 || got.IsVisible {
		t.Fatalf("update not applied: %+v", got)
	}
	if len(got.Colors) != 1 || got.Colors[0] != "Black" {
		t.Fatalf("expected replaced colors, got %+v", got.Colors)
	}
}

func TestUpdateProductMissingReturnsNotFound(t *testing.T) {
	store := openTempStore(t)

	product := sampleProduct("Ghost")
	product.ID = "missing"
	if err := store.UpdateProduct(context.Background(), product); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, sampleProduct("Oxford Shirt"))
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if err := store.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if _, err := store.GetProduct(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteProduct(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent delete, got %v", err)
	}
}

func TestListProductsNewestFirstAndVisibility(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	older := sampleProduct("Older Shirt")
	older.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := sampleProduct("Newer Shirt")
	newer.CreatedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	hidden := sampleProduct("Hidden Kurta")
	hidden.Category = "Kurtas"
	hidden.IsVisible = false
	hidden.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, p := range []catalog.Product{older, newer, hidden} {
		if _, err := store.CreateProduct(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.Name, err)
		}
	}

	visible, err := store.ListVisibleProducts(ctx)
	if err != nil {
		t.Fatalf("list visible: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible products, got %d", len(visible))
	}
	if visible[0].Name != "Newer Shirt" || visible[1].Name != "Older Shirt" {
		t.Fatalf("expected newest first, got %s then %s", visible[0].Name, visible[1].Name)
	}

	all, err := store.ListAllProducts(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products for admin, got %d", len(all))
	}
	if all[1].Name != "Hidden Kurta" {
		t.Fatalf("expected hidden product in admin list ordering, got %s", all[1].Name)
	}
}

func TestProductStoreNilReceiverGuards(t *testing.T) {
	var store *Store
	ctx := context.Background()

	if _, err := store.GetProduct(ctx, "id"); err == nil {
		t.Fatal("expected error for nil store get")
	}
	if _, err := store.ListVisibleProducts(ctx); err == nil {
		t.Fatal("expected error for nil store list")
	}
	if err := store.DeleteProduct(ctx, "id"); err == nil {
		t.Fatal("expected error for nil store delete")
	}
}
