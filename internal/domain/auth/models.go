package auth

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Public strips the password hash before the user leaves the service.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

func (u User) Context() UserContext {
	return UserContext{UserID: u.ID, Name: u.Name, RoleName: u.Role}
}
