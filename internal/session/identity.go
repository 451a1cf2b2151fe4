package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Identity represents the claims decoded from a session token.
type Identity struct {
	Username string
	IsAdmin  bool
}

// tokenClaims mirrors the claim set the backend signs into its tokens.
type tokenClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// DecodeIdentity extracts the identity from a token without verifying the
// signature. The client never holds the signing secret; validity is the
// server's concern and every authorized request is checked there anyway.
func DecodeIdentity(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &tokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	if claims.Username == "" {
		return nil, fmt.Errorf("token carries no username claim")
	}

	return &Identity{
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, nil
}
