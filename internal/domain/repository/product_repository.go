package repository

import (
	"context"

	"pixorva/internal/domain/entity"
)

// ProductRepository persists product listings.
type ProductRepository interface {
	// Create inserts the product with a store-assigned id and creation timestamp,
	// and fills both back into product.
	Create(ctx context.Context, product *entity.Product) error
}
