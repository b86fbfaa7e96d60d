// Package router contains routing setup for the API delivery.
package router

import (
	"pixorva/internal/delivery/api/middleware"
	"pixorva/internal/delivery/api/router/handler"
	"pixorva/internal/domain/route"
	"pixorva/internal/guard"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	SellerHandler     *handler.SellerHandler
	SessionMiddleware *middleware.SessionMiddleware
	GuardMiddleware   *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	sellerHandler     *handler.SellerHandler
	sessionMiddleware *middleware.SessionMiddleware
	guardMiddleware   *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		sellerHandler:     params.SellerHandler,
		sessionMiddleware: params.SessionMiddleware,
		guardMiddleware:   params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, outside any session
	e.GET("/health", handler.HealthCheck)

	site := e.Group("")
	site.Use(r.sessionMiddleware.Process)
	{
		site.GET(route.Home, r.accountHandler.Home)
		site.GET(route.StartSelling, r.accountHandler.StartSelling)
		site.GET(route.SessionAPI, r.accountHandler.Session)
		site.POST(route.Signup, r.accountHandler.SignUp)
		site.POST(route.Login, r.accountHandler.Login)
		site.POST(route.Logout, r.accountHandler.Logout)
	}

	dashboard := r.guardMiddleware.Require(guard.SellerDashboard)
	verification := r.guardMiddleware.Require(guard.SellerVerification)
	addProduct := r.guardMiddleware.Require(guard.AddProduct)

	site.GET(route.SellerDashboard, r.sellerHandler.Dashboard, dashboard)
	site.GET(route.SellerVerify, r.sellerHandler.VerificationStatus, verification)
	site.POST(route.SellerVerify, r.sellerHandler.SubmitVerification, verification)
	site.GET(route.SellerAddProduct, r.sellerHandler.AddProductForm, addProduct)
	site.POST(route.SellerAddProduct, r.sellerHandler.AddProduct, addProduct)
}
