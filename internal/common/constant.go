// Package common contains shared constants and sentinel errors used across
// workout tracker components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// TokenTypeBearer is the token_type value returned by the login endpoint.
const TokenTypeBearer = "bearer"
