package types

// Company represents a company as returned by the companies endpoints.
// Companies are read-only from the client's perspective.
type Company struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees"`
	LogoURL      string `json:"logoUrl,omitempty"`
}
