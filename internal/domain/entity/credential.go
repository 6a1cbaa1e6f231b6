// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Credential is the single locally stored account. The password never
// appears here in plaintext; only its digest is kept.
type Credential struct {
	Email          string `json:"email"`           // Login identifier; must end with the allowed domain suffix.
	PasswordDigest string `json:"password_digest"` // One-way digest of the original password.
}

// IsZero reports whether no account has been registered yet.
func (c Credential) IsZero() bool {
	return c.Email == "" && c.PasswordDigest == ""
}
