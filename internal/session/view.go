package session

import (
	"pixorva/internal/domain/entity"
)

// View is the derived session state consumed by guards and handlers.
// A nil Principal always comes with an absent Profile.
type View struct {
	Principal *entity.Principal
	Profile   entity.ProfileState
	// Loading is true from the moment a principal appears until its first profile callback.
	Loading bool
}

// IsSeller is false unless a principal is signed in and its profile says seller.
func (v View) IsSeller() bool {
	if v.Principal == nil {
		return false
	}
	profile, ok := v.Profile.Get()

	return ok && profile.IsSeller
}

// IsVerified is false unless a principal is signed in and its profile says verified.
func (v View) IsVerified() bool {
	if v.Principal == nil {
		return false
	}
	profile, ok := v.Profile.Get()

	return ok && profile.IsVerified
}

// SignedIn reports whether a principal is present.
func (v View) SignedIn() bool {
	return v.Principal != nil
}

func (v View) clone() View {
	v.Principal = clonePrincipal(v.Principal)

	return v
}
