package identity

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"bitefinder/internal/domain"
	tokenrepo "bitefinder/internal/repository/token"
	userrepo "bitefinder/internal/repository/user"
)

// memoryUserRepo is a lightweight in-memory user repository for tests.
type memoryUserRepo struct {
	byEmail map[string]domain.User
	nextID  int
}

type memoryTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]domain.User)}
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (r *memoryUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	r.nextID++
	clone := u
	clone.ID = "user-" + strconv.Itoa(r.nextID)
	r.byEmail[clone.Email] = clone
	return &clone, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		clone := u
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, id string, patch userrepo.ProfilePatch) (*domain.User, error) {
	for email, u := range r.byEmail {
		if u.ID != id {
			continue
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Phone != nil {
			u.Phone = *patch.Phone
		}
		if patch.Address != nil {
			u.Address = *patch.Address
		}
		r.byEmail[email] = u
		clone := u
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryTokenRepo) Create(_ context.Context, token tokenrepo.Token) error {
	if _, exists := r.tokens[token.Token]; exists {
		return domain.ErrAlreadyExists
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *memoryTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := t
	return &clone, nil
}

func (r *memoryTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tokens, token)
	return nil
}

func TestSignupThenLoginRoundTrip(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, SignupInput{
		Email:    "User@Example.com",
		Password: "secret1",
		Name:     "Test User",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created.Email != "user@example.com" {
		t.Fatalf("email not normalized: %s", created.Email)
	}
	if created.PasswordHash != "" {
		t.Fatal("session copy must not carry the credential")
	}

	logged, _, err := svc.Login(ctx, "user@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != created.ID || logged.Email != created.Email {
		t.Fatalf("login returned a different account: %+v vs %+v", logged, created)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newMemoryUserRepo()
	svc := New(users, newMemoryTokenRepo())
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, SignupInput{Email: "a@b.co", Password: "secret1", Name: "A"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, _, err := svc.Signup(ctx, SignupInput{Email: "a@b.co", Password: "other12", Name: "B"})
	if !errors.Is(err, ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
	if len(users.byEmail) != 1 {
		t.Fatalf("duplicate signup must not alter the user collection, got %d accounts", len(users.byEmail))
	}
}

func TestSignupRejectsBadInput(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	cases := []SignupInput{
		{Email: "not-an-email", Password: "secret1", Name: "A"},
		{Email: "a@b.co", Password: "short", Name: "A"},
		{Email: "a@b.co", Password: "secret1", Name: "  "},
	}
	for _, in := range cases {
		if _, _, err := svc.Signup(ctx, in); err == nil {
			t.Fatalf("expected error for input %+v", in)
		}
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, SignupInput{Email: "a@b.co", Password: "secret1", Name: "A"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, _, err := svc.Login(ctx, "a@b.co", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "missing@b.co", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for missing user, got %v", err)
	}
}

func TestLookupSessionAndLogout(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	u, token, err := svc.Signup(ctx, SignupInput{Email: "a@b.co", Password: "secret1", Name: "A"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	sess, err := svc.LookupSession(ctx, token)
	if err != nil {
		t.Fatalf("lookup session: %v", err)
	}
	if sess.User == nil || sess.User.ID != u.ID || sess.OwnerID != u.ID {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.LookupSession(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
	// Logging out twice is harmless.
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestGuestSession(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	guestID, token, err := svc.Guest(ctx)
	if err != nil {
		t.Fatalf("guest: %v", err)
	}
	sess, err := svc.LookupSession(ctx, token)
	if err != nil {
		t.Fatalf("lookup session: %v", err)
	}
	if sess.User != nil {
		t.Fatal("guest session must not carry a user")
	}
	if sess.OwnerID != guestID {
		t.Fatalf("expected owner %s, got %s", guestID, sess.OwnerID)
	}
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	svc := New(newMemoryUserRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	u, _, err := svc.Signup(ctx, SignupInput{Email: "a@b.co", Password: "secret1", Name: "Old Name"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	phone := "9876543210"
	updated, err := svc.UpdateProfile(ctx, u.ID, userrepo.ProfilePatch{Phone: &phone})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("phone not updated: %+v", updated)
	}
	if updated.Name != "Old Name" {
		t.Fatalf("name should be untouched: %+v", updated)
	}

	empty := " "
	if _, err := svc.UpdateProfile(ctx, u.ID, userrepo.ProfilePatch{Name: &empty}); err == nil {
		t.Fatal("expected error for blank name")
	}
}
