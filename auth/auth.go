package auth

import (
	"time"

	"github.com/Colile1/alx-final-project/models"
	"github.com/Colile1/alx-final-project/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Provider owns the account registry and the active session record. It gates
// which namespace the store and gateway operate under.
type Provider struct {
	gw  *storage.Gateway
	now func() time.Time
}

// New builds a Provider over the given gateway.
func New(gw *storage.Gateway) *Provider {
	return &Provider{gw: gw, now: time.Now}
}

// Register creates an account and signs it in. The email must be unused;
// the password is stored as a bcrypt hash.
func (p *Provider) Register(name, email, password string) (models.Session, error) {
	users := p.gw.Users()
	for _, user := range users {
		if user.Email == email {
			return models.Session{}, models.ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Session{}, err
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: p.now(),
	}
	if err := p.gw.SaveUsers(append(users, user)); err != nil {
		return models.Session{}, err
	}

	return p.openSession(user)
}

// Login signs an existing account in, looked up by unique email.
func (p *Provider) Login(email, password string) (models.Session, error) {
	for _, user := range p.gw.Users() {
		if user.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			return models.Session{}, models.ErrInvalidCredential
		}
		return p.openSession(user)
	}
	return models.Session{}, models.ErrNotFound
}

// Logout clears the active session record. The account itself persists.
func (p *Provider) Logout() error {
	return p.gw.ClearSession()
}

func (p *Provider) openSession(user models.User) (models.Session, error) {
	session := models.Session{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		LastLogin: p.now(),
	}
	if err := p.gw.SaveSession(session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Lookup resolves an identity id back to its session view, for token-based
// requests.
func (p *Provider) Lookup(identityID string) (models.Session, error) {
	for _, user := range p.gw.Users() {
		if user.ID == identityID {
			return models.Session{ID: user.ID, Email: user.Email, Name: user.Name}, nil
		}
	}
	return models.Session{}, models.ErrNotFound
}
