package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// SuperuserName is the seeded administrator account. It can never be
// deleted, and login for it accepts the literal password "superuser"
// regardless of the stored hash (a teaching backdoor kept on purpose).
const SuperuserName = "superuser"

// User is the stored representation of an account. Password holds the
// bcrypt hash and is persisted to disk, so responses must go through
// Public() instead of marshaling a User directly.
type User struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
}

// PublicUser is the client-facing view of a user, without the password hash.
type PublicUser struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
}

// Public returns the user with the password hash stripped.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// RegisterRequest is used for user registration. Any role supplied by
// the client is ignored; new accounts are always plain users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginRequest is used for credential checks
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateRequest is used for updating user information. The username
// is immutable after creation and is deliberately absent here. Fields
// left nil are preserved.
type UserUpdateRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}
