package user

import (
	"context"
	"errors"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/alexken/stockroom/internal/apperror"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]*User // keyed by email
}

func newMemRepo() *memRepo { return &memRepo{users: map[string]*User{}} }

func (m *memRepo) CreateUser(ctx context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return apperror.Conflict("duplicate record (users_email_key)")
	}
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *memRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, apperror.NotFound("user %q not found", email)
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) GetUserByID(ctx context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID.String() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("user %s not found", id)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewService(newMemRepo())

	u, err := svc.RegisterUser(context.Background(), "a.ken@compfy.com", "s3cret-pass", "Alex", "Ken")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.PasswordHash == "s3cret-pass" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("hash does not match the password: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "s3cret-pass"},
		{"email without @", "a.ken", "s3cret-pass"},
		{"short password", "a.ken@compfy.com", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMemRepo())
			_, err := svc.RegisterUser(context.Background(), tt.email, tt.password, "", "")
			if !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, "a.ken@compfy.com", "s3cret-pass", "", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.RegisterUser(ctx, "a.ken@compfy.com", "other-pass-1", "", "")
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestGetUserMalformedID(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.GetUser(context.Background(), "not-a-uuid")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
