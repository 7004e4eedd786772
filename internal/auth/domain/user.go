package domain

import "time"

type User struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Enabled      bool
	Locked       bool
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Role struct {
	ID   int
	Name string
}

// ActivationToken is a single-use numeric code proving control of a
// registered email address. A token is spent once ValidatedAt is set.
type ActivationToken struct {
	ID          int
	Code        string
	UserID      int
	CreatedAt   time.Time
	ExpiresAt   time.Time
	ValidatedAt *time.Time
}

func (t *ActivationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
