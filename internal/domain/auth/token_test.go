package auth

import (
	"context"
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super-secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if err := CheckPassword(hash, "super-secret"); err != nil {
		t.Fatalf("expected password to match, got %v", err)
	}

	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"
	claims := Claims{UserID: "M2001", Name: "Jeanette Ingabire", RoleName: RoleManager}

	token, err := GenerateToken(secret, claims, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	parsed, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if parsed.UserID != claims.UserID || parsed.RoleName != claims.RoleName || parsed.Subject != claims.UserID {
		t.Fatalf("claims mismatch: %+v", parsed)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseTokenRejectsUnknownRole(t *testing.T) {
	token, err := GenerateToken("s", Claims{UserID: "X1", RoleName: "Root"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("s", token); err == nil {
		t.Fatal("expected unknown role to be rejected")
	}
}

type memUsers []User

func (m memUsers) Users(context.Context) ([]User, error) { return append([]User(nil), m...), nil }

func (m *memUsers) UpdateUsers(_ context.Context, fn func([]User) ([]User, error)) error {
	next, err := fn(append([]User(nil), *m...))
	if err != nil {
		return err
	}
	*m = next
	return nil
}

func TestLogin(t *testing.T) {
	hash, err := HashPassword("pass-1234")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	svc := NewService(&memUsers{{ID: "E1001", Name: "Aline Uwase", Email: "aline.u@pts.rw", Role: RoleEmployee, PasswordHash: hash}}, "secret", time.Hour)

	token, user, err := svc.Login(context.Background(), " Aline.U@pts.rw ", "pass-1234")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if token == "" || user.ID != "E1001" || user.PasswordHash != "" {
		t.Fatalf("unexpected login result: %q %+v", token, user)
	}

	if _, _, err := svc.Login(context.Background(), "aline.u@pts.rw", "nope"); err != ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@pts.rw", "pass-1234"); err != ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	hash, err := HashPassword("pass-1234")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	users := &memUsers{{ID: "E1001", Name: "Aline Uwase", Email: "aline.u@pts.rw", Role: RoleEmployee, PasswordHash: hash}}
	svc := NewService(users, "secret", time.Hour)
	ctx := context.Background()

	token, user, err := svc.UpdateProfile(ctx, "E1001", " Aline U. ", "")
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if user.Name != "Aline U." || user.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", user)
	}
	claims, err := ParseToken("secret", token)
	if err != nil || claims.Name != "Aline U." {
		t.Fatalf("expected token with new name, got %+v %v", claims, err)
	}
	if _, _, err := svc.Login(ctx, "aline.u@pts.rw", "pass-1234"); err != nil {
		t.Fatalf("expected old password to survive a rename, got %v", err)
	}

	if _, _, err := svc.UpdateProfile(ctx, "E1001", "Aline", "new-pass-99"); err != nil {
		t.Fatalf("password change error: %v", err)
	}
	if _, _, err := svc.Login(ctx, "aline.u@pts.rw", "pass-1234"); err != ErrInvalidCredentials {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "aline.u@pts.rw", "new-pass-99"); err != nil {
		t.Fatalf("expected new password to work, got %v", err)
	}

	if _, _, err := svc.UpdateProfile(ctx, "E1001", "  ", ""); err != ErrInvalidProfile {
		t.Fatalf("expected invalid profile, got %v", err)
	}
	if _, _, err := svc.UpdateProfile(ctx, "E1001", "Aline", "short"); err != ErrWeakPassword {
		t.Fatalf("expected weak password, got %v", err)
	}
	if _, _, err := svc.UpdateProfile(ctx, "E9999", "Ghost", ""); err != ErrUserNotFound {
		t.Fatalf("expected user not found, got %v", err)
	}
}
