package dto

// RegisterRequest is the raw registration body. Which identity pair is fully
// populated decides the variant: (kodeToko, namaToko) registers a store
// owner, (kodeCabang, namaCabang) a branch. The boundary turns it into one
// of the explicit variants below before it reaches the use case.
type RegisterRequest struct {
	KodeToko   string `json:"kodeToko"`
	NamaToko   string `json:"namaToko"`
	KodeCabang string `json:"kodeCabang"`
	NamaCabang string `json:"namaCabang"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// StoreRegistration registers a store-owner account.
type StoreRegistration struct {
	KodeToko string
	NamaToko string
	Username string
	Password string
}

// BranchRegistration registers a branch account. KodeToko is the parent
// store and may be empty.
type BranchRegistration struct {
	KodeToko   string
	KodeCabang string
	NamaCabang string
	Username   string
	Password   string
}

// RegisterResponse carries the newly assigned identifier.
type RegisterResponse struct {
	UID string `json:"uid"`
}

// LoginRequest carries the tenant code plus credentials. All three fields
// are required.
type LoginRequest struct {
	Kode     string `json:"kode"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountData is the persisted record as returned to the caller. The
// password digest is never included. For branch logins namaToko is blanked.
type AccountData struct {
	KodeToko   string `json:"kodeToko"`
	NamaToko   string `json:"namaToko"`
	KodeCabang string `json:"kodeCabang"`
	NamaCabang string `json:"namaCabang"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}

// LoginResponse is the caller-held identity record. There is no token and no
// server-side session; each login stands alone.
type LoginResponse struct {
	ID   string      `json:"id"`
	Data AccountData `json:"data"`
}

// UpdateAccountRequest partial account update. Nil fields are untouched;
// Password, when present, is re-hashed before persisting.
type UpdateAccountRequest struct {
	KodeToko   *string `json:"kodeToko"`
	NamaToko   *string `json:"namaToko"`
	KodeCabang *string `json:"kodeCabang"`
	NamaCabang *string `json:"namaCabang"`
	Username   *string `json:"username"`
	Password   *string `json:"password"`
}

// IsEmpty reports whether no field was supplied.
func (r UpdateAccountRequest) IsEmpty() bool {
	return r.KodeToko == nil && r.NamaToko == nil && r.KodeCabang == nil &&
		r.NamaCabang == nil && r.Username == nil && r.Password == nil
}
