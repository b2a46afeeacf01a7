package domain

const (
	RoleHost    = "host"
	RoleCleaner = "cleaner"
	RoleAdmin   = "admin"
)

// KnownRole reports whether role is one of the three recognised roles.
func KnownRole(role string) bool {
	return role == RoleHost || role == RoleCleaner || role == RoleAdmin
}

// User models an authenticated actor: a property host, a cleaner, or an admin.
// PasswordHash and Token never appear in API responses; the snapshot layer
// maps them explicitly for persistence.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at"`
	// LastLogin stays empty until the first successful authentication.
	LastLogin string `json:"last_login,omitempty"`
	// Token is the opaque bearer credential, issued once at creation.
	Token string `json:"-"`
}
