// Package identity handles signup/login flows and session lookup.
package identity

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bitefinder/internal/domain"
	tokenrepo "bitefinder/internal/repository/token"
	userrepo "bitefinder/internal/repository/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateAccount is returned when the signup email is taken.
	ErrDuplicateAccount = errors.New("account with this email already exists")
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session is the authenticated caller. OwnerID keys carts and orders;
// User is nil for guest sessions.
type Session struct {
	Token   string
	OwnerID string
	User    *domain.User
}

// Service handles accounts and sessions.
type Service struct {
	users       userrepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	guestTTL    time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(users userrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		users:       users,
		tokens:      newTokenManager(tokens),
		accessTTL:   48 * time.Hour,
		guestTTL:    3 * time.Hour,
		passwordMin: 6,
	}
}

// SignupInput captures the signup form.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Signup registers a new account and logs it in, returning the created
// user and a session token. The password is stored only as a bcrypt hash.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !emailRe.MatchString(email) {
		return nil, "", errors.New("valid email required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", errors.New("name required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, "", fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u, err := s.users.Create(ctx, domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, "", ErrDuplicateAccount
		}
		return nil, "", err
	}

	token, err := s.tokens.IssueUser(ctx, u.ID, s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return sessionCopy(u), token, nil
}

// Login validates credentials and returns the user plus a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.IssueUser(ctx, u.ID, s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return sessionCopy(u), token, nil
}

// Guest issues an anonymous session so carts and checkout work before
// login. The guest id doubles as the cart/order owner key.
func (s *Service) Guest(ctx context.Context) (guestID, token string, err error) {
	guestID = uuid.NewString()
	token, err = s.tokens.IssueGuest(ctx, guestID, s.guestTTL)
	if err != nil {
		return "", "", err
	}
	return guestID, token, nil
}

// Logout revokes the session token. The user collection is untouched.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// LookupSession resolves a bearer token to its session.
func (s *Service) LookupSession(ctx context.Context, token string) (*Session, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	if meta.GuestID != nil {
		return &Session{Token: token, OwnerID: *meta.GuestID}, nil
	}
	u, err := s.users.GetByID(ctx, *meta.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return &Session{Token: token, OwnerID: u.ID, User: sessionCopy(u)}, nil
}

// UpdateProfile merges the patch into the stored account. Only the
// fields named by ProfilePatch can change.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch userrepo.ProfilePatch) (*domain.User, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, errors.New("name cannot be empty")
	}
	u, err := s.users.UpdateProfile(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	return sessionCopy(u), nil
}

// AccessTTLSeconds exposes the session lifetime in seconds.
func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}

// sessionCopy strips the credential from the record handed to callers.
func sessionCopy(u *domain.User) *domain.User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
