package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pixorva/config"
	deliverycontext "pixorva/internal/delivery/context"
	"pixorva/internal/domain/constants"
	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/repository"
	"pixorva/internal/domain/route"
	"pixorva/internal/domain/service"
	"pixorva/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const workflowAddProduct = "add_product"

// maxPrice is the first value products.price numeric(12,2) cannot hold.
var maxPrice = decimal.New(1, 10)

type productService struct {
	products    repository.ProductRepository
	uploader    service.MediaUploader
	publisher   service.EventPublisher
	submissions *submissionRegistry
	timeout     time.Duration
	maxFileSize int64
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	Products  repository.ProductRepository
	Uploader  service.MediaUploader
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		products:    params.Products,
		uploader:    params.Uploader,
		publisher:   params.Publisher,
		submissions: &submissionRegistry{},
		timeout:     params.Config.Upload.Timeout,
		maxFileSize: params.Config.Upload.MaxFileSize,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddProduct uploads the image, then inserts the product once.
func (srv *productService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*usecase.AddProductOutput, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	rawPrice := strings.TrimSpace(input.Price)
	if name == "" || description == "" || rawPrice == "" || input.Image == nil {
		return nil, domainerrors.ErrProductFieldsRequired
	}
	if input.Principal == nil {
		return nil, domainerrors.ErrNotLoggedIn
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil || price.IsNegative() || price.Round(2).GreaterThanOrEqual(maxPrice) {
		return nil, domainerrors.ErrInvalidPrice
	}
	if err := checkFileSize(input.Image, srv.maxFileSize); err != nil {
		return nil, err
	}

	uid := input.Principal.ID
	release, ok := srv.submissions.acquire(workflowAddProduct, uid)
	if !ok {
		return nil, domainerrors.ErrSubmissionInProgress
	}
	defer release()

	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	imageURL, err := srv.uploader.Upload(ctx, input.Image)
	if err != nil {
		srv.log(ctx).Warn("Product image upload failed", slog.String("uid", uid), slog.Any("error", err))

		return nil, asUploadError(err)
	}

	priceValue, _ := price.Float64()
	product := &entity.Product{
		SellerID:    uid,
		SellerEmail: input.Principal.Email,
		Name:        name,
		Description: description,
		Price:       priceValue,
		ImageURL:    imageURL,
	}
	if err := srv.products.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("uid", uid), slog.Any("error", err))

		return nil, asCommitError(err)
	}

	srv.log(ctx).Info("Product created", slog.String("uid", uid), slog.String("product_id", product.ID))

	publishEvent(ctx, srv.publisher, srv.log(ctx), constants.EventProductCreated, uid, product.ID, map[string]string{
		"name":  product.Name,
		"price": price.String(),
	})

	return &usecase.AddProductOutput{Product: product, RedirectTo: route.SellerDashboard}, nil
}
