// Package storage defines persistence contracts for storefront state.
package storage

import (
	"context"
	"errors"

	"github.com/rahulmehra/fashionstore/internal/storefront/catalog"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// Slot names for the durable key-value records the storefront rehydrates at
// startup. Each slot holds one serialized value and is overwritten whole.
const (
	SlotCart         = "fashionStore_cart"
	SlotAdminSession = "fashionStore_adminAuth"
)

// ProductStore persists catalog records.
type ProductStore interface {
	CreateProduct(ctx context.Context, product catalog.Product) (catalog.Product, error)
	UpdateProduct(ctx context.Context, product catalog.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (catalog.Product, error)
	// ListVisibleProducts returns customer-facing records, newest first.
	ListVisibleProducts(ctx context.Context) ([]catalog.Product, error)
	// ListAllProducts returns every record for the admin surface, newest first.
	ListAllProducts(ctx context.Context) ([]catalog.Product, error)
}

// SlotStore persists named durable slots. Get returns ErrNotFound for an
// absent slot; Delete of an absent slot is a no-op.
type SlotStore interface {
	PutSlot(ctx context.Context, name, value string) error
	GetSlot(ctx context.Context, name string) (string, error)
	DeleteSlot(ctx context.Context, name string) error
}
