package entity

import "time"

// AccountType is chosen once at signup and fixes Profile.IsSeller.
type AccountType string

const (
	AccountTypeBuyer  AccountType = "buyer"
	AccountTypeSeller AccountType = "seller"
)

// IsValid checks if the account type is one of the supported values.
func (t AccountType) IsValid() bool {
	return t == AccountTypeBuyer || t == AccountTypeSeller
}

// VerificationStatus tracks the seller verification submission.
// The empty value means the field was never written.
type VerificationStatus string

const (
	VerificationStatusNone    VerificationStatus = "none"
	VerificationStatusPending VerificationStatus = "pending"
)

// VerificationDocuments holds the uploaded proof URLs.
type VerificationDocuments struct {
	GSTProofURL      string // Retrievable URL of the GST proof.
	BusinessProofURL string // Retrievable URL of the business proof.
}

// Profile is the per-principal record kept in the profile store.
type Profile struct {
	UID                string                 // Equals Principal.ID.
	Email              string                 // Copied from the principal at signup.
	FullName           string                 // Display name entered at signup.
	AccountType        AccountType            // buyer or seller.
	IsSeller           bool                   // Fixed at signup from AccountType.
	IsVerified         bool                   // Flipped only by back-office review.
	BusinessName       string                 // Seller only.
	BusinessAddress    string                 // Seller only.
	VerificationStatus VerificationStatus     // Empty, none or pending.
	Documents          *VerificationDocuments // Set by the verification workflow.
	SubmittedAt        *time.Time             // Set by the verification workflow.
	CreatedAt          time.Time              // Signup time.
}

// NewProfile builds the record written once at signup.
func NewProfile(principal *Principal, fullName string, accountType AccountType, businessName, businessAddress string, now time.Time) *Profile {
	profile := &Profile{
		UID:         principal.ID,
		Email:       principal.Email,
		FullName:    fullName,
		AccountType: accountType,
		IsSeller:    accountType == AccountTypeSeller,
		IsVerified:  false,
		CreatedAt:   now,
	}
	if profile.IsSeller {
		profile.BusinessName = businessName
		profile.BusinessAddress = businessAddress
		profile.VerificationStatus = VerificationStatusNone
	}

	return profile
}

// IsPending reports whether verification documents are awaiting review.
func (p *Profile) IsPending() bool {
	return p.VerificationStatus == VerificationStatusPending
}

// ProfileState is either Absent or Present(Profile).
// The zero value is Absent.
type ProfileState struct {
	profile Profile
	present bool
}

// AbsentProfile returns the state used when no record exists, on read errors and when signed out.
func AbsentProfile() ProfileState {
	return ProfileState{}
}

// PresentProfile wraps a loaded record.
func PresentProfile(profile Profile) ProfileState {
	return ProfileState{profile: profile, present: true}
}

// Get returns the profile and whether it is present.
func (s ProfileState) Get() (Profile, bool) {
	return s.profile, s.present
}

// IsPresent reports whether a profile record is loaded.
func (s ProfileState) IsPresent() bool {
	return s.present
}
