// Package cart keeps the order-in-progress for each signed-in user. Carts are
// in-memory only: they survive for the life of the process and are lost on
// restart, which mirrors the storefront's session-scoped cart.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rjfoods/storefront-api/internal/domain/entity"
)

// Store holds one cart per user id. All methods are safe for concurrent use;
// the store is the single writer of its lines and readers get copies.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]entity.CartItem
}

// NewStore builds an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string][]entity.CartItem)}
}

// Add puts one unit of product in userID's cart: an existing line is
// incremented, otherwise a new line with quantity 1 is appended. First-insertion
// order is preserved for display.
func (s *Store) Add(userID string, product *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity++
			return
		}
	}
	s.carts[userID] = append(items, entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		ImageURL:  product.ImageURL,
		Quantity:  1,
	})
}

// UpdateQuantity adjusts a line by delta. A resulting quantity <= 0 removes the
// line entirely (decrementing a quantity-1 item drops it from the cart).
// Returns false when no line matches productID.
func (s *Store) UpdateQuantity(userID, productID string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		items[i].Quantity += delta
		if items[i].Quantity <= 0 {
			s.carts[userID] = append(items[:i], items[i+1:]...)
		}
		return true
	}
	return false
}

// Remove deletes the matching line regardless of quantity.
// Returns false when no line matches productID.
func (s *Store) Remove(userID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties userID's cart. Called after an order is successfully created.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Items returns a copy of userID's cart lines in insertion order.
func (s *Store) Items(userID string) []entity.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[userID]
	out := make([]entity.CartItem, len(items))
	copy(out, items)
	return out
}

// Count returns the sum of quantities across all lines.
func (s *Store) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, it := range s.carts[userID] {
		n += it.Quantity
	}
	return n
}

// Total returns the sum of price × quantity across all lines.
func (s *Store) Total(userID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, it := range s.carts[userID] {
		total = total.Add(it.Subtotal())
	}
	return total
}
