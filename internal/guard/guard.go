// Package guard decides, from a session view, whether a route renders,
// redirects, or shows the loading interstitial.
package guard

import (
	"pixorva/internal/domain/route"
	"pixorva/internal/session"
)

// Outcome is the kind of decision a policy makes.
type Outcome int

const (
	Render Outcome = iota
	Redirect
	Interstitial
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	case Interstitial:
		return "interstitial"
	default:
		return "unknown"
	}
}

// Decision is the result of evaluating a Policy. Target is set for redirects only.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Policy is a pure function from view to decision.
type Policy func(view session.View) Decision

func render() Decision {
	return Decision{Outcome: Render}
}

func redirect(target string) Decision {
	return Decision{Outcome: Redirect, Target: target}
}

func interstitial() Decision {
	return Decision{Outcome: Interstitial}
}

// common runs the checks shared by every guarded route.
func common(view session.View) (Decision, bool) {
	if view.Loading {
		return interstitial(), true
	}
	if view.Principal == nil {
		return redirect(route.Login), true
	}

	return Decision{}, false
}

// SellerDashboard lets only verified sellers through.
func SellerDashboard(view session.View) Decision {
	if d, done := common(view); done {
		return d
	}
	if !view.IsSeller() {
		return redirect(route.Home)
	}
	if !view.IsVerified() {
		return redirect(route.SellerVerify)
	}

	return render()
}

// SellerVerification lets only unverified sellers through.
func SellerVerification(view session.View) Decision {
	if d, done := common(view); done {
		return d
	}
	if view.IsVerified() {
		return redirect(route.SellerDashboard)
	}
	if !view.IsSeller() {
		return redirect(route.Home)
	}

	return render()
}

// AddProduct renders for verified sellers and otherwise returns the dashboard decision.
func AddProduct(view session.View) Decision {
	if d, done := common(view); done {
		return d
	}
	if view.IsSeller() && view.IsVerified() {
		return render()
	}

	return SellerDashboard(view)
}

// Navigate turns a redirect to the page already being shown into an interstitial.
func Navigate(d Decision, currentPath string) Decision {
	if d.Outcome == Redirect && d.Target == currentPath {
		return interstitial()
	}

	return d
}

// Landing picks the route a freshly signed-in principal is sent to.
func Landing(isSeller, isVerified bool) string {
	switch {
	case isSeller && isVerified:
		return route.SellerDashboard
	case isSeller:
		return route.SellerVerify
	default:
		return route.Home
	}
}
