// Package auth implements issuing and validating the signed access tokens
// returned by the login endpoint. Tokens are HS256 JWTs carrying the user id
// and email; nothing is stored server-side.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nick-0037/workout-tracker-api/internal/common"
)

// Claims is the claim set embedded in every issued token: the standard
// registered claims plus the acting user's id and email.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// TokenCodec signs and verifies access tokens with a process-wide secret key
// and validity duration, both fixed at construction.
type TokenCodec struct {
	secretKey []byte
	validity  time.Duration
}

func NewTokenCodec(secretKey []byte, validity time.Duration) *TokenCodec {
	return &TokenCodec{secretKey: secretKey, validity: validity}
}

// Issue builds a claim set expiring validity from now and returns it signed
// as a compact JWT string.
func (c *TokenCodec) Issue(userID int64, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Decode verifies the signature and expiry of tokenString and returns its
// claims. Expired tokens yield common.ErrTokenExpired; anything else that
// fails verification yields common.ErrInvalidToken.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
