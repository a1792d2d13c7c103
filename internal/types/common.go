package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
)

// UserCtxName is the fiber Locals key holding the authenticated UserContext.
const UserCtxName = "user"

// UserContext is the identity carried by a verified token.
type UserContext struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// CanActAs reports whether the user may act on behalf of username.
func (u UserContext) CanActAs(username string) bool {
	return u.IsAdmin || (u.Username != "" && u.Username == username)
}
