package domain

// User is a directory record for one account. The password is stored and
// compared verbatim: the session token is derived from the literal value, so
// hashing it would invalidate every credential a client holds.
type User struct {
	Email     string                 `json:"email"`
	Password  string                 `json:"password,omitempty"`
	PIN       string                 `json:"pin"`
	EditCount int                    `json:"editCount"`
	Databases []DatabaseRegistration `json:"databases"`
	CreatedAt string                 `json:"createdAt,omitempty"`
}

// DatabaseRegistration binds a user to one ledger script endpoint. The token
// is a 6-character bearer credential granting read access; it rotates whenever
// the script URL changes and is stable across renames.
type DatabaseRegistration struct {
	Name      string `json:"name"`
	ScriptURL string `json:"scriptUrl"`
	Token     string `json:"token,omitempty"`
	EditCount int    `json:"editCount"`
}

// TokenResolution is the public view of a registration looked up by sharing
// token. It never carries owner credentials.
type TokenResolution struct {
	Name       string `json:"name"`
	ScriptURL  string `json:"scriptUrl"`
	OwnerEmail string `json:"ownerEmail"`
}

// Updates is a partial update for a directory record. Databases is a pointer
// so an empty replacement list is distinguishable from "no change".
type Updates struct {
	Password  string                  `json:"password,omitempty"`
	PIN       string                  `json:"pin,omitempty"`
	Databases *[]DatabaseRegistration `json:"databases,omitempty"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u Updates) IsEmpty() bool {
	return u.Password == "" && u.PIN == "" && u.Databases == nil
}
