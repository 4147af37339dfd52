package domain

// RoleAdmin is the role tag the auth service assigns to administrators.
// The comparison is exact: "admin" or "Admin" do not grant access.
const RoleAdmin = "ADMIN"

// Session errors.
var (
	ErrLoginRequired      = &Error{Code: EUNAUTHORIZED, Message: "Please login to place an order"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid credentials"}
)

// Session is the client's authentication state: an opaque bearer token and a
// role tag, both empty when logged out. It is created on login, destroyed on
// logout, and only ever read in between.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// LoggedIn reports whether the session carries a credential.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session may use the admin console: a token
// must be present and the role must equal RoleAdmin exactly. A stored role
// without a token never grants access.
func (s Session) IsAdmin() bool {
	return s.Token != "" && s.Role == RoleAdmin
}
