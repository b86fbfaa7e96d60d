package postgres

import (
	"context"

	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/repository"

	"gorm.io/gorm"
)

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(params RepositoryParams) repository.ProductRepository {
	return &productRepository{db: params.DB}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPrice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductFieldsRequired
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = m.ID.String()
	product.CreatedAt = m.CreatedAt

	return nil
}
