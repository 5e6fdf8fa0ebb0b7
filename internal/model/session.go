package model

// User is the signed-in shopper.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch holds the profile fields to merge; nil fields are left alone.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Credentials are the values submitted by a login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is a snapshot of the identity state.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user"`
	IsAdmin         bool   `json:"isAdmin"`
	LastUserPath    string `json:"lastUserPath"`
}
