package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rahulmehra/fashionstore/internal/storefront/catalog"
	"github.com/rahulmehra/fashionstore/internal/storefront/storage"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const productColumns = `product_id, name, brand, category, price, original_price,
	        image, sizes, colors, stock, description, is_visible, created_at`

// CreateProduct inserts one catalog record. An empty ID is assigned a fresh
// UUID; a zero CreatedAt defaults to now. The stored record is returned.
func (s *Store) CreateProduct(ctx context.Context, product catalog.Product) (catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Product{}, err
	}
	if s == nil || s.sqlDB == nil {
		return catalog.Product{}, fmt.Errorf("storage is not configured")
	}
	product.Name = strings.TrimSpace(product.Name)
	product.Brand = strings.TrimSpace(product.Brand)
	product.Category = strings.TrimSpace(product.Category)
	if err := product.Validate(); err != nil {
		return catalog.Product{}, err
	}
	if strings.TrimSpace(product.ID) == "" {
		product.ID = uuid.NewString()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	product.CreatedAt = product.CreatedAt.UTC()

	sizes, colors, err := encodeVariantLists(product)
	if err != nil {
		return catalog.Product{}, err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO products (
		   product_id, name, brand, category, price, original_price,
		   image, sizes, colors, stock, description, is_visible,
		   created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.Name,
		product.Brand,
		product.Category,
		product.Price,
		nullableFloat(product.OriginalPrice),
		product.Image,
		sizes,
		colors,
		product.Stock,
		product.Description,
		boolToInt(product.IsVisible),
		toMillis(product.CreatedAt),
		toMillis(time.Now()),
	)
	if err != nil {
		if isProductUniqueViolation(err) {
			return catalog.Product{}, storage.ErrAlreadyExists
		}
		return catalog.Product{}, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// UpdateProduct replaces every mutable field of an existing record.
func (s *Store) UpdateProduct(ctx context.Context, product catalog.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(product.ID) == "" {
		return fmt.Errorf("product id is required")
	}
	product.Name = strings.TrimSpace(product.Name)
	product.Brand = strings.TrimSpace(product.Brand)
	product.Category = strings.TrimSpace(product.Category)
	if err := product.Validate(); err != nil {
		return err
	}

	sizes, colors, err := encodeVariantLists(product)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE products
		    SET name = ?, brand = ?, category = ?, price = ?, original_price = ?,
		        image = ?, sizes = ?, colors = ?, stock = ?, description = ?,
		        is_visible = ?, updated_at = ?
		  WHERE product_id = ?`,
		product.Name,
		product.Brand,
		product.Category,
		product.Price,
		nullableFloat(product.OriginalPrice),
		product.Image,
		sizes,
		colors,
		product.Stock,
		product.Description,
		boolToInt(product.IsVisible),
		toMillis(time.Now()),
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteProduct removes one record by ID.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return fmt.Errorf("product id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM products WHERE product_id = ?`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetProduct returns one record by ID.
func (s *Store) GetProduct(ctx context.Context, productID string) (catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Product{}, err
	}
	if s == nil || s.sqlDB == nil {
		return catalog.Product{}, fmt.Errorf("storage is not configured")
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return catalog.Product{}, fmt.Errorf("product id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+productColumns+`
		   FROM products
		  WHERE product_id = ?`,
		productID,
	)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Product{}, storage.ErrNotFound
		}
		return catalog.Product{}, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// ListVisibleProducts returns customer-facing records, newest first.
func (s *Store) ListVisibleProducts(ctx context.Context) ([]catalog.Product, error) {
	return s.listProducts(ctx, true)
}

// ListAllProducts returns every record for the admin surface, newest first.
func (s *Store) ListAllProducts(ctx context.Context) ([]catalog.Product, error) {
	return s.listProducts(ctx, false)
}

func (s *Store) listProducts(ctx context.Context, visibleOnly bool) ([]catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if visibleOnly {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY created_at DESC, product_id ASC`

	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (catalog.Product, error) {
	var product catalog.Product
	var originalPrice sql.NullFloat64
	var sizes string
	var colors string
	var visible int
	var createdAt int64
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Brand,
		&product.Category,
		&product.Price,
		&originalPrice,
		&product.Image,
		&sizes,
		&colors,
		&product.Stock,
		&product.Description,
		&visible,
		&createdAt,
	)
	if err != nil {
		return catalog.Product{}, err
	}
	if originalPrice.Valid {
		value := originalPrice.Float64
		product.OriginalPrice = &value
	}
	if err := json.Unmarshal([]byte(sizes), &product.Sizes); err != nil {
		return catalog.Product{}, fmt.Errorf("decode sizes for product %s: %w", product.ID, err)
	}
	if err := json.Unmarshal([]byte(colors), &product.Colors); err != nil {
		return catalog.Product{}, fmt.Errorf("decode colors for product %s: %w", product.ID, err)
	}
	product.IsVisible = visible != 0
	product.CreatedAt = fromMillis(createdAt)
	return product, nil
}

func encodeVariantLists(product catalog.Product) (sizes string, colors string, err error) {
	sizesJSON, err := json.Marshal(product.Sizes)
	if err != nil {
		return "", "", fmt.Errorf("encode sizes: %w", err)
	}
	colorsJSON, err := json.Marshal(product.Colors)
	if err != nil {
		return "", "", fmt.Errorf("encode colors: %w", err)
	}
	return string(sizesJSON), string(colorsJSON), nil
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func isProductUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "products.product_id")
}

var _ storage.ProductStore = (*Store)(nil)
