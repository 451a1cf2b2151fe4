package types

// User represents the full user profile returned by GET users/{username}.
// Applications holds the ids of jobs the server knows the user has
// applied to.
type User struct {
	Username     string `json:"username"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"isAdmin"`
	Applications []int  `json:"applications,omitempty"`
}
