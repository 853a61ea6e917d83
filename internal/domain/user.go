package domain

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID           int32    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Tel          string   `json:"tel"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	CreatedOn    string   `json:"created_on"`
	UpdatedOn    string   `json:"updated_on"`
}

// IsAdmin reports whether the user holds the admin role. Roles are fixed
// for the lifetime of a request; there is no elevation path.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
