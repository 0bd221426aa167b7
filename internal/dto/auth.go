package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the claims of a bearer token. Permissions lists granted actions such as
// "post:drinks".
type AuthClaims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// HasPermission reports whether the token grants permission
func (c *AuthClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
