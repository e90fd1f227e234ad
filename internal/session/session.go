// Package session holds the authenticated user model, the demo credential
// check, and the durable on-disk session snapshot. The snapshot is the one
// piece of state that survives restarts; it lives at
// ~/.config/vista/session.toml.
package session

import "errors"

// Role distinguishes the administrator session from a regular one.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the authenticated identity record.
type User struct {
	ID          string `toml:"id"`
	Email       string `toml:"email"`
	FirstName   string `toml:"first_name"`
	LastName    string `toml:"last_name"`
	Phone       string `toml:"phone"`
	Role        Role   `toml:"role"`
	DateOfBirth string `toml:"date_of_birth,omitempty"`
	Nationality string `toml:"nationality,omitempty"`
	Passport    string `toml:"passport,omitempty"`
}

// FullName renders "First Last".
func (u User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return ""
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user carries the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Update merges the non-zero fields of partial into a copy of u.
type Update struct {
	FirstName   string
	LastName    string
	Phone       string
	DateOfBirth string
	Nationality string
	Passport    string
}

// Apply returns u with the non-empty fields of upd merged in.
func (u User) Apply(upd Update) User {
	if upd.FirstName != "" {
		u.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		u.LastName = upd.LastName
	}
	if upd.Phone != "" {
		u.Phone = upd.Phone
	}
	if upd.DateOfBirth != "" {
		u.DateOfBirth = upd.DateOfBirth
	}
	if upd.Nationality != "" {
		u.Nationality = upd.Nationality
	}
	if upd.Passport != "" {
		u.Passport = upd.Passport
	}
	return u
}

const (
	adminEmail    = "admin@airvista.pk"
	adminPassword = "AirVista@2024"
)

// ErrInvalidCredentials is returned when either credential field is empty,
// or when the admin portal is given anything but the fixed admin pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticate performs the demo credential check. The fixed admin pair
// yields the administrator user; any other non-empty pair yields the
// generic demo user. There is no real verification, by design.
func Authenticate(email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	if email == adminEmail && password == adminPassword {
		return User{
			ID:        "ADMIN001",
			Email:     adminEmail,
			FirstName: "Admin",
			LastName:  "User",
			Phone:     "03405603070",
			Role:      RoleAdmin,
		}, nil
	}
	return User{
		ID:        "USER001",
		Email:     email,
		FirstName: "John",
		LastName:  "Doe",
		Phone:     "+92 300 1234567",
		Role:      RoleUser,
	}, nil
}

// AuthenticateAdmin is the admin-portal variant: only the fixed admin pair
// is accepted.
func AuthenticateAdmin(email, password string) (User, error) {
	user, err := Authenticate(email, password)
	if err != nil {
		return User{}, err
	}
	if !user.IsAdmin() {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}
