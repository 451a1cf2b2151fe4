package types

import "encoding/json"

// Job represents a job posting as returned by the jobs endpoints.
// Jobs are read-only; the client separately tracks which ones the
// current user has applied to.
type Job struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Salary        *int         `json:"salary,omitempty"`
	Equity        *json.Number `json:"equity,omitempty"`
	CompanyHandle string       `json:"companyHandle"`
	CompanyName   string       `json:"companyName,omitempty"`
}
