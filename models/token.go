package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the claim set carried by the bearer tokens the user
// directory issues. Besides the registered claims this service relies on the
// subject (caller id) and the custom "role" claim.
type AccessClaims struct {
	jwt.RegisteredClaims

	// Role is the caller's role name as issued by the user directory.
	// It must parse into the closed [Role] set; unknown values are rejected
	// at the transport boundary.
	Role string `json:"role"`
}
