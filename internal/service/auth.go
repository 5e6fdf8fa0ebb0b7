package service

import (
	"context"

	"simusmart/internal/model"
)

// StubAuthenticator accepts any credentials and returns a fixed user.
type StubAuthenticator struct {
	User model.User
}

// NewStubAuthenticator creates an authenticator that always signs in as
// the given user.
func NewStubAuthenticator(name, email string) *StubAuthenticator {
	return &StubAuthenticator{User: model.User{Name: name, Email: email}}
}

// Authenticate returns a copy of the fixed user.
func (a *StubAuthenticator) Authenticate(ctx context.Context, creds model.Credentials) (*model.User, error) {
	u := a.User
	return &u, nil
}
