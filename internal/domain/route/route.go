// Package route names the application paths shared by guards, handlers and workflows.
package route

const (
	Home             = "/"
	Login            = "/login"
	Signup           = "/signup"
	Logout           = "/logout"
	StartSelling     = "/start-selling"
	SellerVerify     = "/seller/verify"
	SellerDashboard  = "/seller/dashboard"
	SellerAddProduct = "/seller/add-product"
	SessionAPI       = "/api/session"
)
