package domain

// User represents a registered user credential.
// PasswordHash is never serialized; the registrar and authenticator
// return UserSummary to callers instead.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

// UserSummary is the client-visible projection of a User.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary returns the client-visible fields of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
