package middleware

import "github.com/gin-gonic/gin"

const principalKey = "principal"

// Principal is the authenticated caller, established once by the auth
// middleware. Handlers read it instead of untyped context values.
type Principal struct {
	ID   string
	Role string
}

// SetPrincipal stores the principal on the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal retrieves the authenticated principal, if any.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

// Owns reports whether the principal may act on a resource owned by the
// given user id: the owner themselves or an admin.
func (p Principal) Owns(userID string) bool {
	return p.ID == userID || p.IsAdmin()
}
