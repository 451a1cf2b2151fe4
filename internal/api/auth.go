package api

import (
	"context"
	"net/http"

	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

// Login posts credentials to auth/token and returns the issued token.
// It does not touch session state; committing the token is the caller's
// responsibility.
func (c *Client) Login(ctx context.Context, req types.LoginRequest) (string, error) {
	data := map[string]any{
		"username": req.Username,
		"password": req.Password,
	}
	var res types.TokenResponse
	if err := c.do(ctx, http.MethodPost, "auth/token", data, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

// Signup registers a new account via auth/register and returns the issued
// token. Post-condition is identical to Login: an account exists and a
// session is implicitly started.
func (c *Client) Signup(ctx context.Context, req types.SignupRequest) (string, error) {
	data := map[string]any{
		"username":  req.Username,
		"password":  req.Password,
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
	}
	var res types.TokenResponse
	if err := c.do(ctx, http.MethodPost, "auth/register", data, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}
