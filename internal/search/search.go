// Package search runs combined company and job lookups.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/RachaudKeyes/jobly-frontend/internal/types"
)

// Lister is the slice of the API client search depends on.
type Lister interface {
	ListCompanies(ctx context.Context, nameFilter string) ([]types.Company, error)
	ListJobs(ctx context.Context, titleFilter string) ([]types.Job, error)
}

// Results holds both halves of a combined search.
type Results struct {
	Companies []types.Company
	Jobs      []types.Job
}

// Run queries companies by name and jobs by title concurrently and returns
// both result sets. The first failure cancels the sibling call and wins.
func Run(ctx context.Context, client Lister, term string) (*Results, error) {
	g, gCtx := errgroup.WithContext(ctx)
	results := &Results{}

	g.Go(func() error {
		companies, err := client.ListCompanies(gCtx, term)
		if err != nil {
			return err
		}
		results.Companies = companies
		return nil
	})

	g.Go(func() error {
		jobs, err := client.ListJobs(gCtx, term)
		if err != nil {
			return err
		}
		results.Jobs = jobs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
