package sample

import "strings"

// User represents a user in the system
type User struct {
	ID    int64
	Name  string
	Email string
}

// NewUser creates a user from the given values without validating them
func NewUser(id int64, name, email string) *User {
	return &User{ID: id, Name: name, Email: email}
}

// DisplayName returns the user's display name
func (u *User) DisplayName() string {
	return u.Name
}

// IsValid reports whether the user has a name and an email containing "@"
func (u *User) IsValid() bool {
	return u.Name != "" && strings.Contains(u.Email, "@")
}
