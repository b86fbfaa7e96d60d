package guard

import (
	"testing"

	"pixorva/internal/domain/entity"
	"pixorva/internal/domain/route"
	"pixorva/internal/session"

	"github.com/stretchr/testify/assert"
)

var principal = &entity.Principal{ID: "uid-1", Email: "seller@example.com"}

func viewWith(isSeller, isVerified bool) session.View {
	return session.View{
		Principal: principal,
		Profile:   entity.PresentProfile(entity.Profile{UID: principal.ID, IsSeller: isSeller, IsVerified: isVerified}),
	}
}

var (
	loadingView   = session.View{Principal: principal, Loading: true}
	signedOutView = session.View{}
	absentView    = session.View{Principal: principal, Profile: entity.AbsentProfile()}
	buyerView     = viewWith(false, false)
	pendingView   = viewWith(true, false)
	verifiedView  = viewWith(true, true)
)

func TestPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		view   session.View
		want   Decision
	}{
		{"dashboard loading", SellerDashboard, loadingView, Decision{Outcome: Interstitial}},
		{"dashboard signed out", SellerDashboard, signedOutView, Decision{Outcome: Redirect, Target: route.Login}},
		{"dashboard missing profile", SellerDashboard, absentView, Decision{Outcome: Redirect, Target: route.Home}},
		{"dashboard buyer", SellerDashboard, buyerView, Decision{Outcome: Redirect, Target: route.Home}},
		{"dashboard unverified seller", SellerDashboard, pendingView, Decision{Outcome: Redirect, Target: route.SellerVerify}},
		{"dashboard verified seller", SellerDashboard, verifiedView, Decision{Outcome: Render}},

		{"verification loading", SellerVerification, loadingView, Decision{Outcome: Interstitial}},
		{"verification signed out", SellerVerification, signedOutView, Decision{Outcome: Redirect, Target: route.Login}},
		{"verification buyer", SellerVerification, buyerView, Decision{Outcome: Redirect, Target: route.Home}},
		{"verification unverified seller", SellerVerification, pendingView, Decision{Outcome: Render}},
		{"verification verified seller", SellerVerification, verifiedView, Decision{Outcome: Redirect, Target: route.SellerDashboard}},

		{"add product loading", AddProduct, loadingView, Decision{Outcome: Interstitial}},
		{"add product signed out", AddProduct, signedOutView, Decision{Outcome: Redirect, Target: route.Login}},
		{"add product buyer", AddProduct, buyerView, Decision{Outcome: Redirect, Target: route.Home}},
		{"add product unverified seller", AddProduct, pendingView, Decision{Outcome: Redirect, Target: route.SellerVerify}},
		{"add product verified seller", AddProduct, verifiedView, Decision{Outcome: Render}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy(tt.view))
		})
	}
}

func TestAddProduct_DelegatesDashboardDecision(t *testing.T) {
	for _, view := range []session.View{signedOutView, absentView, buyerView, pendingView} {
		assert.Equal(t, SellerDashboard(view), AddProduct(view))
	}
}

func TestPolicies_AreDeterministic(t *testing.T) {
	for _, policy := range []Policy{SellerDashboard, SellerVerification, AddProduct} {
		for _, view := range []session.View{loadingView, signedOutView, buyerView, pendingView, verifiedView} {
			assert.Equal(t, policy(view), policy(view))
		}
	}
}

func TestNavigate(t *testing.T) {
	t.Run("redirect to another page passes through", func(t *testing.T) {
		d := Decision{Outcome: Redirect, Target: route.Home}

		assert.Equal(t, d, Navigate(d, route.SellerDashboard))
	})

	t.Run("redirect to current page becomes interstitial", func(t *testing.T) {
		d := Decision{Outcome: Redirect, Target: route.SellerVerify}

		assert.Equal(t, Decision{Outcome: Interstitial}, Navigate(d, route.SellerVerify))
	})

	t.Run("render passes through", func(t *testing.T) {
		assert.Equal(t, Decision{Outcome: Render}, Navigate(Decision{Outcome: Render}, route.SellerDashboard))
	})
}

func TestLanding(t *testing.T) {
	assert.Equal(t, route.SellerDashboard, Landing(true, true))
	assert.Equal(t, route.SellerVerify, Landing(true, false))
	assert.Equal(t, route.Home, Landing(false, false))
	assert.Equal(t, route.Home, Landing(false, true))
}

func TestNavigation(t *testing.T) {
	assert.Equal(t, []Link{
		{Label: "Login", Href: route.Login},
		{Label: "Sign up", Href: route.Signup},
	}, Navigation(signedOutView))

	assert.Equal(t, []Link{
		{Label: "Start Selling", Href: route.StartSelling},
		{Label: "Logout", Href: route.Logout},
	}, Navigation(buyerView))

	assert.Equal(t, []Link{
		{Label: "Seller Dashboard", Href: route.SellerDashboard},
		{Label: "Logout", Href: route.Logout},
	}, Navigation(pendingView))
}
