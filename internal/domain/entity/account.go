package entity

import "time"

// Account roles. Derived from which identity pair the registration carried,
// never supplied by the caller.
const (
	RoleOwner  = "owner"  // store-level principal (toko)
	RoleBranch = "branch" // branch-level principal (cabang)
)

// Account is one login principal. Exactly one of NamaToko (role owner) or
// NamaCabang (role branch) is populated; a branch account always carries both
// KodeToko (its parent store) and KodeCabang (itself).
type Account struct {
	ID             string
	KodeToko       string // owning store code; present on all accounts
	KodeCabang     string // branch code; branch accounts only
	NamaToko       string
	NamaCabang     string
	Username       string
	HashedPassword string // bcrypt digest, never the plaintext
	Role           string // owner or branch
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountPatch is a partial update. Nil fields are left untouched; Password
// is plaintext and gets re-hashed by the use case before persisting.
type AccountPatch struct {
	KodeToko       *string
	KodeCabang     *string
	NamaToko       *string
	NamaCabang     *string
	Username       *string
	HashedPassword *string
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.KodeToko == nil && p.KodeCabang == nil && p.NamaToko == nil &&
		p.NamaCabang == nil && p.Username == nil && p.HashedPassword == nil
}
