package guard

import (
	"pixorva/internal/domain/route"
	"pixorva/internal/session"
)

// Link is a navigation entry.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Navigation returns the links shown for the given view.
func Navigation(view session.View) []Link {
	if view.Principal == nil {
		return []Link{
			{Label: "Login", Href: route.Login},
			{Label: "Sign up", Href: route.Signup},
		}
	}

	links := make([]Link, 0, 2)
	if view.IsSeller() {
		links = append(links, Link{Label: "Seller Dashboard", Href: route.SellerDashboard})
	} else {
		links = append(links, Link{Label: "Start Selling", Href: route.StartSelling})
	}

	return append(links, Link{Label: "Logout", Href: route.Logout})
}
