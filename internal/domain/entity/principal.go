// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Principal is the authenticated identity of a browser session.
// It is owned by the identity provider; a nil *Principal means signed out.
type Principal struct {
	ID    string // Identity provider user id, also the profile document id.
	Email string // Email the principal signed in with.
}

// Equal reports whether two principals refer to the same identity.
func (p *Principal) Equal(other *Principal) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.ID == other.ID && p.Email == other.Email
}
