package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const MinPasswordLength = 8

type Service struct {
	store  Store
	secret string
	ttl    time.Duration
}

func NewService(store Store, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{store: store, secret: secret, ttl: ttl}
}

func (s *Service) FindUserByEmail(ctx context.Context, email string) (User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return User{}, fmt.Errorf("load users: %w", err)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range users {
		if strings.ToLower(user.Email) == email {
			return user, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

func (s *Service) FindUser(ctx context.Context, userID string) (User, bool, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return User{}, false, fmt.Errorf("load users: %w", err)
	}
	for _, user := range users {
		if user.ID == userID {
			return user, true, nil
		}
	}
	return User{}, false, nil
}

// Login checks the credentials and issues a signed token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, User, error) {
	user, err := s.FindUserByEmail(ctx, email)
	if err != nil {
		return "", User{}, err
	}
	if user.PasswordHash == "" || CheckPassword(user.PasswordHash, password) != nil {
		return "", User{}, ErrInvalidCredentials
	}
	token, err := s.issue(user)
	if err != nil {
		return "", User{}, err
	}
	return token, user.Public(), nil
}

// UpdateProfile renames the user and, when password is non-empty, replaces
// the password hash. The returned token carries the new name.
func (s *Service) UpdateProfile(ctx context.Context, userID, name, password string) (string, User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", User{}, ErrInvalidProfile
	}
	var hash string
	if password != "" {
		if len(password) < MinPasswordLength {
			return "", User{}, ErrWeakPassword
		}
		hashed, err := HashPassword(password)
		if err != nil {
			return "", User{}, fmt.Errorf("hash password: %w", err)
		}
		hash = hashed
	}

	var updated User
	err := s.store.UpdateUsers(ctx, func(all []User) ([]User, error) {
		for i := range all {
			if all[i].ID != userID {
				continue
			}
			all[i].Name = name
			if hash != "" {
				all[i].PasswordHash = hash
			}
			updated = all[i]
			return all, nil
		}
		return nil, ErrUserNotFound
	})
	if err != nil {
		return "", User{}, err
	}
	token, err := s.issue(updated)
	if err != nil {
		return "", User{}, err
	}
	return token, updated.Public(), nil
}

func (s *Service) issue(user User) (string, error) {
	token, err := GenerateToken(s.secret, Claims{UserID: user.ID, Name: user.Name, RoleName: user.Role}, s.ttl)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *Service) TokenTTL() time.Duration {
	return s.ttl
}
