// Package cart owns the shopping cart state machine and its durable slot.
package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/rahulmehra/fashionstore/internal/storefront/catalog"
	"github.com/rahulmehra/fashionstore/internal/storefront/storage"
)

// LineItem is one (product, size, color) combination tracked in the cart.
// Product is a snapshot taken at add time; later catalog edits do not reach
// items already in the cart.
type LineItem struct {
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedSize  string          `json:"selectedSize"`
	SelectedColor string          `json:"selectedColor"`
}

// Key returns the composite identity of the line item.
func (li LineItem) Key() Key {
	return Key{ProductID: li.Product.ID, Size: li.SelectedSize, Color: li.SelectedColor}
}

// Key uniquely identifies a line item within the cart.
type Key struct {
	ProductID string
	Size      string
	Color     string
}

// Engine is the process-wide cart. Items keep insertion order with unique
// composite keys; isOpen is a transient drawer flag that never persists.
// Every item mutation writes the whole sequence to the durable slot.
type Engine struct {
	mu     sync.Mutex
	items  []LineItem
	isOpen bool
	slots  storage.SlotStore
}

// NewEngine builds the cart and rehydrates it from the durable slot. A
// missing slot starts empty; an unparsable one is discarded with a logged
// warning so a corrupt payload can never take the storefront down.
func NewEngine(ctx context.Context, slots storage.SlotStore) *Engine {
	e := &Engine{slots: slots}
	if slots == nil {
		return e
	}

	payload, err := slots.GetSlot(ctx, storage.SlotCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("cart: load slot: %v", err)
		}
		return e
	}

	items, err := decodeItems(payload)
	if err != nil {
		log.Printf("cart: discarding corrupt slot payload: %v", err)
		return e
	}
	e.items = items
	return e
}

// Add merges quantity into the line item with the same composite key, or
// appends a new item holding a snapshot of product. Quantities below one
// count as a single unit. Add always succeeds.
func (e *Engine) Add(ctx context.Context, product catalog.Product, size, color string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := Key{ProductID: product.ID, Size: size, Color: color}
	for i := range e.items {
		if e.items[i].Key() == key {
			e.items[i].Quantity += quantity
			e.persistLocked(ctx)
			return
		}
	}

	e.items = append(e.items, LineItem{
		Product:       product,
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
	})
	e.persistLocked(ctx)
}

// UpdateQuantity replaces the matching item's quantity. A quantity of zero
// or less removes the item. Updating an absent key changes nothing.
func (e *Engine) UpdateQuantity(ctx context.Context, productID, size, color string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := Key{ProductID: productID, Size: size, Color: color}
	for i := range e.items {
		if e.items[i].Key() != key {
			continue
		}
		if quantity <= 0 {
			e.items = append(e.items[:i], e.items[i+1:]...)
		} else {
			e.items[i].Quantity = quantity
		}
		e.persistLocked(ctx)
		return
	}
}

// Remove deletes the matching line item; removing an absent key is a no-op.
func (e *Engine) Remove(ctx context.Context, productID, size, color string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := Key{ProductID: productID, Size: size, Color: color}
	for i := range e.items {
		if e.items[i].Key() == key {
			e.items = append(e.items[:i], e.items[i+1:]...)
			e.persistLocked(ctx)
			return
		}
	}
}

// Clear empties the item sequence. The drawer flag is left as-is.
func (e *Engine) Clear(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = nil
	e.persistLocked(ctx)
}

// Toggle flips the drawer flag and returns the new value. Drawer state is
// transient UI state and is not persisted.
func (e *Engine) Toggle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.isOpen = !e.isOpen
	return e.isOpen
}

// IsOpen reports the drawer flag.
func (e *Engine) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isOpen
}

// Items returns a copy of the current line item sequence in insertion order.
func (e *Engine) Items() []LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]LineItem, len(e.items))
	copy(items, e.items)
	return items
}

// TotalItems derives the summed quantity across all line items.
func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	for _, item := range e.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice derives the summed price of the cart from the product snapshots.
func (e *Engine) TotalPrice() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0.0
	for _, item := range e.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// persistLocked writes the full item sequence to the durable slot. Cart
// mutations have no error path; the in-memory state stays authoritative and
// a failed write only logs, matching last-writer-wins slot semantics.
func (e *Engine) persistLocked(ctx context.Context) {
	if e.slots == nil {
		return
	}
	payload, err := encodeItems(e.items)
	if err != nil {
		log.Printf("cart: encode slot payload: %v", err)
		return
	}
	if err := e.slots.PutSlot(ctx, storage.SlotCart, payload); err != nil {
		log.Printf("cart: persist slot: %v", err)
	}
}
