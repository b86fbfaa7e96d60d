package docstore

import (
	"context"
	"log/slog"
	"time"

	"pixorva/internal/domain/constants"
	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

type productRepository struct {
	products    *firestore.CollectionRef
	callTimeout time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewProductRepository creates a ProductRepository over the products collection.
func NewProductRepository(params Params) repository.ProductRepository {
	return &productRepository{
		products:    params.Client.Collection(constants.CollectionProducts),
		callTimeout: params.Config.Store.CallTimeout,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Create adds the product under an auto id. createdAt is assigned by the server;
// product.CreatedAt carries the local write time.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ctx, cancel := withCallTimeout(ctx, repo.callTimeout)
	defer cancel()

	ref, _, err := repo.products.Add(ctx, fromProductDomain(product))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = ref.ID
	product.CreatedAt = repo.now().UTC()
	repo.logger.Debug("Product created", slog.String("productID", ref.ID), slog.String("sellerID", product.SellerID))

	return nil
}
