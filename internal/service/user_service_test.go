package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/epicboard/internal/repository"
)

func TestUserService_Create(t *testing.T) {
	repos, _ := setupRepos(t)
	svc := NewUserService(repos.Users)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserInput{Name: "  Ada Lovelace ", Email: " ada@example.com "})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ada Lovelace", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)

	fetched, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, fetched.Email)
}

func TestUserService_Create_Invalid(t *testing.T) {
	repos, _ := setupRepos(t)
	svc := NewUserService(repos.Users)

	tests := []struct {
		name    string
		in      CreateUserInput
		message string
	}{
		{"missing name", CreateUserInput{Email: "a@b.co"}, "name is required"},
		{"blank name", CreateUserInput{Name: "   ", Email: "a@b.co"}, "name is required"},
		{"missing email", CreateUserInput{Name: "Ada"}, "email is required"},
		{"bad email", CreateUserInput{Name: "Ada", Email: "not-an-email"}, "email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repos, _ := setupRepos(t)
	svc := NewUserService(repos.Users)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserInput{Name: "Other Ada", Email: "ADA@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Resolve(t *testing.T) {
	repos, _ := setupRepos(t)
	svc := NewUserService(repos.Users)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateUserInput{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	byEmail, err := svc.Resolve(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := svc.Resolve(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byID.ID)

	_, err = svc.Resolve(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
