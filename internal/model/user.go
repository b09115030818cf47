package model

import "time"

// Role values stored in users.role.  Anything else coming from a client is
// rejected during registration; an absent role resolves to RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column.  The PasswordHash field is
// the bcrypt digest of the password; it never leaves the repository and
// service layers.  Handlers build their own response types (see
// model.UserView) so the digest cannot leak into a JSON body by accident.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Name         – display name ("First Last").
//	Email        – unique email address, stored lowercase.
//	PasswordHash – bcrypt hashed password.
//	Role         – either "user" or "admin".
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// UserView is the externally visible representation of a user.  It is the
// only user shape that is ever serialized to a client and it deliberately
// has no field for the password hash.
type UserView struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// View converts a stored user into its client-facing shape.
func (u *User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
