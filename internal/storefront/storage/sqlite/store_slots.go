package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rahulmehra/fashionstore/internal/storefront/storage"
)

// PutSlot writes one durable slot, replacing any previous value whole.
func (s *Store) PutSlot(ctx context.Context, name, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("slot name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name,
		value,
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("put slot %s: %w", name, err)
	}
	return nil
}

// GetSlot returns one durable slot value, or storage.ErrNotFound.
func (s *Store) GetSlot(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("slot name is required")
	}

	var value string
	row := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, name)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("get slot %s: %w", name, err)
	}
	return value, nil
}

// DeleteSlot removes one durable slot; deleting an absent slot is a no-op.
func (s *Store) DeleteSlot(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("slot name is required")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete slot %s: %w", name, err)
	}
	return nil
}

var _ storage.SlotStore = (*Store)(nil)
