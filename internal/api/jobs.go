package api

import (
	"context"
	"strings"

	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

// ListJobs returns all jobs, narrowed by titleFilter when it is a
// non-empty string. Same client-side filter semantics as ListCompanies:
// case-insensitive substring containment on the title, original order
// preserved.
func (c *Client) ListJobs(ctx context.Context, titleFilter string) ([]types.Job, error) {
	var res struct {
		Jobs []types.Job `json:"jobs"`
	}
	if err := c.get(ctx, "jobs", nil, &res); err != nil {
		return nil, err
	}

	if titleFilter == "" {
		return res.Jobs, nil
	}

	needle := strings.ToLower(titleFilter)
	filtered := make([]types.Job, 0, len(res.Jobs))
	for _, job := range res.Jobs {
		if strings.Contains(strings.ToLower(job.Title), needle) {
			filtered = append(filtered, job)
		}
	}
	return filtered, nil
}
