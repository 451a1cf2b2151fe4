package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

// ListCompanies returns all companies, narrowed by nameFilter when it is a
// non-empty string. Filtering is case-insensitive substring containment and
// happens client-side on the full collection; the server's own filter
// parameters are never used, and the original ordering is preserved.
func (c *Client) ListCompanies(ctx context.Context, nameFilter string) ([]types.Company, error) {
	var res struct {
		Companies []types.Company `json:"companies"`
	}
	if err := c.get(ctx, "companies", nil, &res); err != nil {
		return nil, err
	}

	if nameFilter == "" {
		return res.Companies, nil
	}

	needle := strings.ToLower(nameFilter)
	filtered := make([]types.Company, 0, len(res.Companies))
	for _, company := range res.Companies {
		if strings.Contains(strings.ToLower(company.Name), needle) {
			filtered = append(filtered, company)
		}
	}
	return filtered, nil
}

// GetCompany returns the company with the given handle. An unknown handle
// surfaces as the server's normalized error, never as a nil result.
func (c *Client) GetCompany(ctx context.Context, handle string) (*types.Company, error) {
	var res struct {
		Company *types.Company `json:"company"`
	}
	if err := c.get(ctx, fmt.Sprintf("companies/%s", handle), nil, &res); err != nil {
		return nil, err
	}
	return res.Company, nil
}
