package models

// UserSummary is the slim user record the backend returns with auth
// responses. It is replaced wholesale on re-login, never mutated.
type UserSummary struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Role     string  `json:"role,omitempty"`
}

// AuthPayload is the data field of /auth/register.php and /auth/login.php
// responses.
type AuthPayload struct {
	User  *UserSummary `json:"user"`
	Token string       `json:"token"`
}

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)
