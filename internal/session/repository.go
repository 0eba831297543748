package session

import (
	"context"
	"fmt"
	"strings"

	"VelvetStore/internal/kv"
	"VelvetStore/pkg/kit"
)

// KeyCurrentUser holds the logged-in user, if any.
const KeyCurrentUser = "currentUser"

const DefaultAdminEmail = "admin@velvetvogue.com"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Credentials is what the login and register forms submit. The password is
// required but never checked or stored.
type Credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Repository struct {
	kv         *kv.Adapter
	adminEmail string
}

// NewRepository returns a session store. An empty adminEmail falls back to
// DefaultAdminEmail.
func NewRepository(a *kv.Adapter, adminEmail string) *Repository {
	adminEmail = strings.TrimSpace(adminEmail)
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	return &Repository{kv: a, adminEmail: adminEmail}
}

func (r *Repository) Current(ctx context.Context) (User, bool, error) {
	u, ok, err := kv.Read[*User](ctx, r.kv, KeyCurrentUser)
	if err = r.kv.Recover(ctx, err); err != nil {
		return User{}, false, fmt.Errorf("session: %w", err)
	}
	if !ok || u == nil {
		return User{}, false, nil
	}
	return *u, true, nil
}

// Login starts a session for c.Email. The role is decided by the email alone.
func (r *Repository) Login(ctx context.Context, c Credentials) (User, error) {
	c = normalize(c)
	if err := kit.Validate(c); err != nil {
		return User{}, err
	}
	if c.Name == "" {
		c.Name = localPart(c.Email)
	}
	return r.start(ctx, c)
}

// Register is Login with a mandatory display name.
func (r *Repository) Register(ctx context.Context, c Credentials) (User, error) {
	c = normalize(c)
	if err := kit.Validate(c); err != nil {
		return User{}, err
	}
	if c.Name == "" {
		return User{}, kit.Invalid("name", "is required")
	}
	return r.start(ctx, c)
}

func (r *Repository) start(ctx context.Context, c Credentials) (User, error) {
	u := User{Name: c.Name, Email: c.Email, Role: r.roleFor(c.Email)}
	if err := r.kv.Write(ctx, KeyCurrentUser, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *Repository) Logout(ctx context.Context) error {
	return r.kv.Clear(ctx, KeyCurrentUser)
}

// IsAdmin is false both without a session and for non-admin sessions.
func (r *Repository) IsAdmin(ctx context.Context) (bool, error) {
	u, ok, err := r.Current(ctx)
	if err != nil {
		return false, err
	}
	return ok && u.IsAdmin(), nil
}

func (r *Repository) roleFor(email string) Role {
	if strings.EqualFold(email, r.adminEmail) {
		return RoleAdmin
	}
	return RoleCustomer
}

func normalize(c Credentials) Credentials {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	return c
}

func localPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
