package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

// GetCurrentUser fetches the full profile for username, including the
// server-known applied-job ids. With no token held or no username given it
// returns (nil, nil) immediately without a network call: "not logged in
// yet" is a normal state, not an error. A failed fetch likewise degrades
// to (nil, nil) with a diagnostic trace, since reading the current user is
// never critical.
func (c *Client) GetCurrentUser(ctx context.Context, username string) (*types.User, error) {
	if c.tokens.Token() == "" {
		fmt.Fprintf(c.trace, "no token held, skipping user fetch\n")
		return nil, nil
	}
	if username == "" {
		fmt.Fprintf(c.trace, "no username supplied, skipping user fetch\n")
		return nil, nil
	}

	var res struct {
		User *types.User `json:"user"`
	}
	if err := c.get(ctx, fmt.Sprintf("users/%s", username), nil, &res); err != nil {
		fmt.Fprintf(c.trace, "user fetch failed: %v\n", err)
		return nil, nil
	}
	return res.User, nil
}

// SaveProfile sends a partial profile update via PATCH users/{username}.
// The username is immutable and travels only in the path. When the server
// rotates the token it is returned alongside the updated profile; the
// caller decides whether to persist it.
func (c *Client) SaveProfile(ctx context.Context, username string, patch types.ProfileUpdate) (*types.User, string, error) {
	data := map[string]any{
		"firstName": patch.FirstName,
		"lastName":  patch.LastName,
		"email":     patch.Email,
	}
	if patch.Password != "" {
		data["password"] = patch.Password
	}

	var res struct {
		User  *types.User `json:"user"`
		Token string      `json:"token"`
	}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("users/%s", username), data, &res); err != nil {
		return nil, "", err
	}
	return res.User, res.Token, nil
}

// ApplyToJob posts an empty body to the job-application endpoint. Success
// carries no payload; recording the application locally is the caller's
// job, as is deduplicating repeat applies.
func (c *Client) ApplyToJob(ctx context.Context, username string, jobID int) error {
	endpoint := fmt.Sprintf("users/%s/jobs/%d", username, jobID)
	return c.do(ctx, http.MethodPost, endpoint, map[string]any{}, nil)
}
