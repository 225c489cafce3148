package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"account_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound // Default: not found
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound // Default: not found
}

// mockHasher is a mock implementation of the PasswordHasher interface.
type mockHasher struct {
	HashFunc   func(plain string) (string, error)
	VerifyFunc func(encoded, plain string) bool
}

func (m *mockHasher) Hash(plain string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(plain)
	}
	return "hashed:" + plain, nil // Default: marked fake hash
}

func (m *mockHasher) Verify(encoded, plain string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(encoded, plain)
	}
	return encoded == "hashed:"+plain // Default: matches the fake hash
}

// mockIssuer is a mock implementation of the TokenIssuer interface.
type mockIssuer struct {
	token string
	err   error
	// lastID records the id passed to Issue for assertions.
	lastID string
}

func (m *mockIssuer) Issue(id, userName, email string) (string, error) {
	m.lastID = id
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password reaching the store is hashed
				if user.PasswordHash == "Abcdef1!" {
					t.Error("plaintext password crossed the storage boundary")
				}
				if !strings.HasPrefix(user.PasswordHash, "hashed:") {
					t.Errorf("expected hashed password, got %q", user.PasswordHash)
				}
				user.ID = "generated-id"
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockHasher{}, &mockIssuer{}, &mockIssuer{})
		user, fieldErrs, err := uc.Register(context.Background(), "alice", "alice@x.com", "Abcdef1!")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fieldErrs) != 0 {
			t.Fatalf("unexpected field errors: %v", fieldErrs)
		}
		if user == nil {
			t.Fatal("expected user")
		}
		if user.ID != "generated-id" {
			t.Errorf("expected generated id, got %q", user.ID)
		}
		if user.UserName != "alice" || user.Email != "alice@x.com" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("duplicate email becomes a field error", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUserAlreadyExists
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockHasher{}, &mockIssuer{}, &mockIssuer{})
		user, fieldErrs, err := uc.Register(context.Background(), "alice", "alice@x.com", "Abcdef1!")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Error("expected no user")
		}
		if len(fieldErrs) != 1 {
			t.Fatalf("expected 1 field error, got %d", len(fieldErrs))
		}
		if fieldErrs[0].Field != "email" || fieldErrs[0].Message != "User already exists" {
			t.Errorf("unexpected field error: %+v", fieldErrs[0])
		}
	})

	t.Run("hasher failure propagates as an internal error", func(t *testing.T) {
		expectedErr := errors.New("hasher misconfigured")
		hasher := &mockHasher{
			HashFunc: func(plain string) (string, error) { return "", expectedErr },
		}

		uc := NewAuthUsecase(&mockUserRepository{}, hasher, &mockIssuer{}, &mockIssuer{})
		_, fieldErrs, err := uc.Register(context.Background(), "alice", "alice@x.com", "Abcdef1!")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if fieldErrs != nil {
			t.Errorf("expected no field errors, got %v", fieldErrs)
		}
	})

	t.Run("repository failure propagates as an internal error", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error { return expectedErr },
		}

		uc := NewAuthUsecase(mockRepo, &mockHasher{}, &mockIssuer{}, &mockIssuer{})
		_, _, err := uc.Register(context.Background(), "alice", "alice@x.com", "Abcdef1!")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	testUser := &entity.User{
		ID:           "id-1",
		UserName:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "hashed:Abcdef1!",
	}

	findAlice := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login returns identity and both tokens", func(t *testing.T) {
		access := &mockIssuer{token: "access-token"}
		refresh := &mockIssuer{token: "refresh-token"}

		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findAlice}, &mockHasher{}, access, refresh)
		result, fieldErrs, err := uc.Login(context.Background(), "alice@x.com", "Abcdef1!")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fieldErrs) != 0 {
			t.Fatalf("unexpected field errors: %v", fieldErrs)
		}
		if result.AccessToken != "access-token" {
			t.Errorf("expected access token, got %q", result.AccessToken)
		}
		if result.RefreshToken != "refresh-token" {
			t.Errorf("expected refresh token, got %q", result.RefreshToken)
		}
		if result.User.ID != "id-1" || result.User.Email != "alice@x.com" || result.User.UserName != "alice" {
			t.Errorf("unexpected identity: %+v", result.User)
		}
		if access.lastID != "id-1" || refresh.lastID != "id-1" {
			t.Error("expected both issuers to be called with the user id")
		}
	})

	t.Run("unknown email returns a field error on email", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findAlice}, &mockHasher{}, &mockIssuer{}, &mockIssuer{})
		result, fieldErrs, err := uc.Login(context.Background(), "nobody@x.com", "Abcdef1!")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != nil {
			t.Error("expected no result")
		}
		if len(fieldErrs) != 1 || fieldErrs[0].Field != "email" || fieldErrs[0].Message != "User not found" {
			t.Errorf("unexpected field errors: %v", fieldErrs)
		}
	})

	t.Run("wrong password returns a field error on password and no tokens", func(t *testing.T) {
		access := &mockIssuer{token: "access-token"}

		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findAlice}, &mockHasher{}, access, &mockIssuer{})
		result, fieldErrs, err := uc.Login(context.Background(), "alice@x.com", "wrong-password")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != nil {
			t.Error("expected no result")
		}
		if len(fieldErrs) != 1 || fieldErrs[0].Field != "password" || fieldErrs[0].Message != "Incorrect password" {
			t.Errorf("unexpected field errors: %v", fieldErrs)
		}
		if access.lastID != "" {
			t.Error("expected no token to be issued on password mismatch")
		}
	})

	t.Run("storage failure propagates as an internal error", func(t *testing.T) {
		expectedErr := errors.New("connection refused")
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, expectedErr
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockHasher{}, &mockIssuer{}, &mockIssuer{})
		_, fieldErrs, err := uc.Login(context.Background(), "alice@x.com", "Abcdef1!")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if fieldErrs != nil {
			t.Errorf("expected no field errors, got %v", fieldErrs)
		}
	})

	t.Run("issuer failure propagates as an internal error", func(t *testing.T) {
		expectedErr := errors.New("signing failed")

		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findAlice}, &mockHasher{}, &mockIssuer{err: expectedErr}, &mockIssuer{})
		_, _, err := uc.Login(context.Background(), "alice@x.com", "Abcdef1!")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
	})
}
