// Package admin gates the back-office surface behind a shared static key.
//
// This is a display-level gate, not a security control: the key ships with
// the storefront client and the durable marker is a plain "true" flag. Do
// not extend it into real authentication; the storefront deliberately has
// none.
package admin

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/rahulmehra/fashionstore/internal/storefront/storage"
)

const sessionMarker = "true"

// Guard holds the single admin session flag and its durable slot.
type Guard struct {
	mu     sync.Mutex
	key    string
	authed bool
	slots  storage.SlotStore
}

// NewGuard builds the guard and rehydrates the session flag from storage.
// Anything other than the exact marker value counts as logged out.
func NewGuard(ctx context.Context, key string, slots storage.SlotStore) *Guard {
	g := &Guard{key: key, slots: slots}
	if slots == nil {
		return g
	}

	value, err := slots.GetSlot(ctx, storage.SlotAdminSession)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("admin: load session slot: %v", err)
		}
		return g
	}
	g.authed = value == sessionMarker
	return g
}

// Login compares key against the configured secret. On an exact match the
// session flag is set and persisted; on a mismatch nothing changes.
func (g *Guard) Login(ctx context.Context, key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.key == "" || key != g.key {
		return false
	}

	g.authed = true
	if g.slots != nil {
		if err := g.slots.PutSlot(ctx, storage.SlotAdminSession, sessionMarker); err != nil {
			log.Printf("admin: persist session slot: %v", err)
		}
	}
	return true
}

// Logout clears the session flag and its durable record unconditionally.
func (g *Guard) Logout(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.authed = false
	if g.slots != nil {
		if err := g.slots.DeleteSlot(ctx, storage.SlotAdminSession); err != nil {
			log.Printf("admin: clear session slot: %v", err)
		}
	}
}

// Authenticated reports the current session flag.
func (g *Guard) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authed
}
