package checkout

import (
	"context"

	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

// TxRunner executes fn with an order repository bound to one database
// transaction, so the order row and its item snapshot commit or roll back
// together. fn returning an error rolls back.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
