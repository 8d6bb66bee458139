package domain

const (
	RoleAdmin  = "admin"
	RoleWaiter = "waiter"
)

// Identity is what a successful login returns. No token or session is
// issued; the client carries these fields itself.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
