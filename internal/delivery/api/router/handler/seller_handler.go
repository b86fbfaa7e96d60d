package handler

import (
	"log/slog"
	"net/http"

	"pixorva/internal/delivery/api/response"
	deliverycontext "pixorva/internal/delivery/context"
	"pixorva/internal/domain/service"
	"pixorva/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
	ProductUC      usecase.ProductUsecase
	Logger         *slog.Logger
}

// SellerHandler serves the guarded seller pages.
type SellerHandler struct {
	verificationUC usecase.VerificationUsecase
	productUC      usecase.ProductUsecase
	logger         *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler.
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		verificationUC: params.VerificationUC,
		productUC:      params.ProductUC,
		logger:         params.Logger,
	}
}

// DashboardSection is one tile of the seller dashboard.
type DashboardSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// DashboardResponse is the seller dashboard payload.
type DashboardResponse struct {
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	Sections []DashboardSection `json:"sections"`
}

// VerificationResponse tells the page whether to show the form or the pending notice.
type VerificationResponse struct {
	State            string `json:"state"`
	GSTProofURL      string `json:"gstProofUrl,omitempty"`
	BusinessProofURL string `json:"businessProofUrl,omitempty"`
}

// ProductResponse is a created product listing.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// Dashboard renders the verified seller's dashboard.
func (h *SellerHandler) Dashboard(c echo.Context) error {
	return response.Success(c, http.StatusOK, DashboardResponse{
		Title:    "Welcome to your Seller Dashboard",
		Subtitle: "You are verified and ready to sell!",
		Sections: []DashboardSection{
			{Title: "Your Listings", Description: "Manage your product listings.", Action: "View Listings"},
			{Title: "Your Orders", Description: "View and manage incoming orders.", Action: "View Orders"},
			{Title: "Your Payouts", Description: "Manage your account and payouts.", Action: "View Payouts"},
		},
	})
}

// VerificationStatus reads the verification state once.
func (h *SellerHandler) VerificationStatus(c echo.Context) error {
	view := deliverycontext.GetView(c)

	out, err := h.verificationUC.Status(c.Request().Context(), view.Principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVerificationResponse(out))
}

// SubmitVerification accepts the gstProof and businessProof files.
func (h *SellerHandler) SubmitVerification(c echo.Context) error {
	view := deliverycontext.GetView(c)

	gstProof, closeGST := h.formFile(c, "gstProof")
	defer closeGST()
	businessProof, closeBusiness := h.formFile(c, "businessProof")
	defer closeBusiness()

	out, err := h.verificationUC.Submit(c.Request().Context(), &usecase.SubmitVerificationInput{
		Principal:     view.Principal,
		GSTProof:      gstProof,
		BusinessProof: businessProof,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVerificationResponse(out))
}

// AddProductForm describes the add-product form.
func (h *SellerHandler) AddProductForm(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"title":  "Add a New Product",
		"fields": []string{"name", "description", "price", "image"},
	})
}

// AddProduct creates a listing and redirects to the dashboard.
func (h *SellerHandler) AddProduct(c echo.Context) error {
	view := deliverycontext.GetView(c)

	image, closeImage := h.formFile(c, "image")
	defer closeImage()

	out, err := h.productUC.AddProduct(c.Request().Context(), &usecase.AddProductInput{
		Principal:   view.Principal,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Image:       image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.RedirectWithResult(c, out.RedirectTo, ProductResponse{
		ID:          out.Product.ID,
		Name:        out.Product.Name,
		Description: out.Product.Description,
		Price:       out.Product.Price,
		ImageURL:    out.Product.ImageURL,
	})
}

// formFile opens an uploaded file. A missing file yields nil so the workflow reports
// its own validation message.
func (h *SellerHandler) formFile(c echo.Context, field string) (*service.MediaFile, func()) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}
	}

	f, err := fh.Open()
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to open uploaded file",
			slog.String("field", field),
			slog.Any("error", err),
		)

		return nil, func() {}
	}

	return &service.MediaFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Content:     f,
	}, func() { _ = f.Close() }
}

func toVerificationResponse(out *usecase.VerificationOutput) VerificationResponse {
	resp := VerificationResponse{State: string(out.State)}
	if out.Documents != nil {
		resp.GSTProofURL = out.Documents.GSTProofURL
		resp.BusinessProofURL = out.Documents.BusinessProofURL
	}

	return resp
}
