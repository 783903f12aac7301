package model

// Role grants either game master or regular player capabilities
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

// User is a registered account. Passwords are stored as entered.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// SessionUser is the password-free projection of the logged in user
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Session returns the session projection of the user
func (u User) Session() SessionUser {
	return SessionUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// IsAdmin reports whether the session user is a game master
func (s SessionUser) IsAdmin() bool {
	return s.Role == RoleAdmin
}
