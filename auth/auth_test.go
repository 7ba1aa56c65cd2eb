package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Colile1/alx-final-project/config"
	"github.com/Colile1/alx-final-project/models"
	"github.com/Colile1/alx-final-project/storage"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	gw, err := storage.Open(config.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open gateway: %v", err)
	}
	return New(gw)
}

func TestRegisterThenLogin(t *testing.T) {
	p := newTestProvider(t)

	registered, err := p.Register("Ana", "ana@x.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Name != "Ana" || registered.ID == "" {
		t.Fatalf("unexpected session from register: %+v", registered)
	}

	session, err := p.Login("ana@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Name != "Ana" || session.ID != registered.ID {
		t.Fatalf("unexpected session from login: %+v", session)
	}
	if session.LastLogin.IsZero() {
		t.Fatalf("lastLogin not set")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	p := newTestProvider(t)

	if _, err := p.Register("Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := p.Login("ana@x.com", "wrong"); !errors.Is(err, models.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	p := newTestProvider(t)

	if _, err := p.Login("ghost@x.com", "pw"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	p := newTestProvider(t)

	if _, err := p.Register("Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := p.Register("Other Ana", "ana@x.com", "pw2"); !errors.Is(err, models.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestPasswordIsStoredHashed(t *testing.T) {
	p := newTestProvider(t)

	if _, err := p.Register("Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	users := p.gw.Users()
	if len(users) != 1 {
		t.Fatalf("expected one account, got %d", len(users))
	}
	if users[0].Password == "pw" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestLogoutKeepsAccount(t *testing.T) {
	p := newTestProvider(t)

	if _, err := p.Register("Ana", "ana@x.com", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := p.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := p.Login("ana@x.com", "pw"); err != nil {
		t.Fatalf("account must persist across logout: %v", err)
	}
}
