package models

// DefaultPageLimit is the number of users requested per page.
const DefaultPageLimit = 50

// User is a registered user as listed by the admin API.
type User struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	Verified  bool   `json:"verified"`
}

// Pagination describes the position of a page within the user collection.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalUsers  int  `json:"totalUsers"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// FallbackPagination is used when the admin API omits the descriptor.
func FallbackPagination(page, count int) Pagination {
	return Pagination{
		CurrentPage: page,
		TotalPages:  1,
		TotalUsers:  count,
		Limit:       DefaultPageLimit,
	}
}

// UsersResponse is the body of GET /api/admin/users. A nil Users slice means
// the field was missing from the response.
type UsersResponse struct {
	Users      []User      `json:"users"`
	Pagination *Pagination `json:"pagination"`
}

// UsersPage is one page of users with its pagination descriptor.
type UsersPage struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}
