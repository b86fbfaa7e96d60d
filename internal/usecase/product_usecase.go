package usecase

import (
	"context"

	"pixorva/internal/domain/entity"
	"pixorva/internal/domain/service"
)

// AddProductInput carries the add-product form.
type AddProductInput struct {
	Principal   *entity.Principal
	Name        string
	Description string
	Price       string
	Image       *service.MediaFile
}

// AddProductOutput returns the created product and the follow-up route.
type AddProductOutput struct {
	Product    *entity.Product
	RedirectTo string
}

// ProductUsecase defines the add-product workflow.
type ProductUsecase interface {
	AddProduct(ctx context.Context, input *AddProductInput) (*AddProductOutput, error)
}
