package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrDuplicateUsername = errors.New("username already registered")

// ErrInvalidCredentials covers both an unknown username and a wrong password;
// callers must not be able to tell which part was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrUserNotFound = errors.New("user not found")

// User models a registered account. PasswordHash is serialized under the
// "password" field so directories written by earlier versions keep loading.
type User struct {
	Fullname     string `json:"fullname"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// ValidRole reports whether role is one of the roles a User may carry.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// Project returns the non-secret view of the user.
func (u *User) Project() *Session {
	return &Session{
		Fullname: u.Fullname,
		Username: u.Username,
		Role:     u.Role,
	}
}
