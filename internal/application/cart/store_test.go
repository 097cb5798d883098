package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjfoods/storefront-api/internal/application/cart"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
)

const userID = "user-1"

func product(id, name string, price int64) *entity.Product {
	return &entity.Product{ID: id, Name: name, Price: decimal.NewFromInt(price), Category: "Fast Food"}
}

func TestAdd_RepeatedAddsSumQuantity(t *testing.T) {
	s := cart.NewStore()
	p := product("p1", "Zinger Burger", 650)

	for i := 0; i < 4; i++ {
		s.Add(userID, p)
	}

	items := s.Items(userID)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity, "adding the same product n times yields quantity n")
	assert.Equal(t, 4, s.Count(userID))
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s := cart.NewStore()
	s.Add(userID, product("p1", "Burger", 650))
	s.Add(userID, product("p2", "Pizza", 1400))
	s.Add(userID, product("p3", "Shake", 350))
	s.Add(userID, product("p1", "Burger", 650)) // increment must not reorder

	items := s.Items(userID)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{items[0].ProductID, items[1].ProductID, items[2].ProductID})
}

func TestUpdateQuantity_DecrementAtOneRemovesLine(t *testing.T) {
	s := cart.NewStore()
	s.Add(userID, product("p1", "Burger", 650))

	ok := s.UpdateQuantity(userID, "p1", -1)
	assert.True(t, ok)
	assert.Empty(t, s.Items(userID), "quantity 1 minus 1 removes the item entirely")
}

func TestUpdateQuantity_DecrementAboveOne(t *testing.T) {
	s := cart.NewStore()
	p := product("p1", "Burger", 650)
	s.Add(userID, p)
	s.Add(userID, p)

	ok := s.UpdateQuantity(userID, "p1", -1)
	assert.True(t, ok)

	items := s.Items(userID)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantity_UnknownLine(t *testing.T) {
	s := cart.NewStore()
	assert.False(t, s.UpdateQuantity(userID, "missing", 1))
}

func TestTotal_RecomputedAfterEveryMutation(t *testing.T) {
	s := cart.NewStore()
	s.Add(userID, product("p1", "Burger", 650))
	s.Add(userID, product("p2", "Pizza", 1400))
	s.Add(userID, product("p1", "Burger", 650))

	// 2×650 + 1×1400
	assert.True(t, decimal.NewFromInt(2700).Equal(s.Total(userID)), "got %s", s.Total(userID))

	s.UpdateQuantity(userID, "p2", -1)
	assert.True(t, decimal.NewFromInt(1300).Equal(s.Total(userID)), "got %s", s.Total(userID))

	s.Remove(userID, "p1")
	assert.True(t, decimal.Zero.Equal(s.Total(userID)))
	assert.Equal(t, 0, s.Count(userID))
}

func TestRemove_IgnoresQuantity(t *testing.T) {
	s := cart.NewStore()
	p := product("p1", "Burger", 650)
	for i := 0; i < 5; i++ {
		s.Add(userID, p)
	}

	assert.True(t, s.Remove(userID, "p1"))
	assert.Empty(t, s.Items(userID))
	assert.False(t, s.Remove(userID, "p1"), "second remove finds nothing")
}

func TestClear_EmptiesOnlyThatUser(t *testing.T) {
	s := cart.NewStore()
	s.Add(userID, product("p1", "Burger", 650))
	s.Add("user-2", product("p2", "Pizza", 1400))

	s.Clear(userID)

	assert.Empty(t, s.Items(userID))
	assert.Len(t, s.Items("user-2"), 1, "clearing one cart must not touch another user's cart")
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := cart.NewStore()
	s.Add(userID, product("p1", "Burger", 650))

	items := s.Items(userID)
	items[0].Quantity = 99

	assert.Equal(t, 1, s.Items(userID)[0].Quantity, "mutating the returned slice must not affect the store")
}
