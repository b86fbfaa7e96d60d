package handler

import (
	"pixorva/internal/guard"
	"pixorva/internal/session"
)

// PrincipalResponse is the signed-in identity.
type PrincipalResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProfileResponse is the profile as shown to its owner.
type ProfileResponse struct {
	FullName           string `json:"fullName"`
	AccountType        string `json:"accountType"`
	BusinessName       string `json:"businessName,omitempty"`
	VerificationStatus string `json:"verificationStatus,omitempty"`
}

// SessionResponse is the session view plus the navigation it implies.
type SessionResponse struct {
	SignedIn   bool               `json:"signedIn"`
	Loading    bool               `json:"loading"`
	IsSeller   bool               `json:"isSeller"`
	IsVerified bool               `json:"isVerified"`
	Principal  *PrincipalResponse `json:"principal,omitempty"`
	Profile    *ProfileResponse   `json:"profile,omitempty"`
	Navigation []guard.Link       `json:"navigation"`
}

func toSessionResponse(view session.View) SessionResponse {
	resp := SessionResponse{
		SignedIn:   view.SignedIn(),
		Loading:    view.Loading,
		IsSeller:   view.IsSeller(),
		IsVerified: view.IsVerified(),
		Navigation: guard.Navigation(view),
	}
	if view.Principal != nil {
		resp.Principal = &PrincipalResponse{ID: view.Principal.ID, Email: view.Principal.Email}
	}
	if profile, ok := view.Profile.Get(); ok && view.Principal != nil {
		resp.Profile = &ProfileResponse{
			FullName:           profile.FullName,
			AccountType:        string(profile.AccountType),
			BusinessName:       profile.BusinessName,
			VerificationStatus: string(profile.VerificationStatus),
		}
	}

	return resp
}
