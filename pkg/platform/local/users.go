package local

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/murkotick/storefront-connect/pkg/core"
)

func (p *Platform) getUser(ctx context.Context, id string) (User, error) {
	var (
		out                 User
		firstName, lastName sql.NullString
	)
	err := p.db.QueryRowContext(ctx,
		"SELECT user_id, email, first_name, last_name, created_at, updated_at FROM users WHERE user_id = ?",
		id).Scan(&out.ID, &out.Email, &firstName, &lastName, &out.CreatedAt, &out.UpdatedAt)
	if err == sql.ErrNoRows {
		return User{}, fmt.Errorf("user %s: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	out.FirstName = firstName.String
	out.LastName = lastName.String
	return out, nil
}

// Register creates an account and starts a session for it.
func (p *Platform) Register(ctx context.Context, email, password, firstName, lastName string) (User, error) {
	if email == "" || password == "" {
		return User{}, fmt.Errorf("email and password are required: %w", core.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.New().String()
	now := p.clk.Now().Format(time.RFC3339)
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO users (user_id, email, password_hash, first_name, last_name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, email, string(hash), firstName, lastName, now, now)
	if err != nil {
		return User{}, fmt.Errorf("register %s: %w", email, err)
	}

	p.mu.Lock()
	p.currentUserID = id
	p.mu.Unlock()

	return p.getUser(ctx, id)
}

// Authenticate checks credentials and starts a session on success.
func (p *Platform) Authenticate(ctx context.Context, email, password string) (User, error) {
	var id, hash string
	err := p.db.QueryRowContext(ctx,
		"SELECT user_id, password_hash FROM users WHERE email = ?", email).Scan(&id, &hash)
	if err == sql.ErrNoRows {
		return User{}, fmt.Errorf("login %s: %w", email, core.ErrUnauthorized)
	}
	if err != nil {
		return User{}, fmt.Errorf("login %s: %w", email, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, fmt.Errorf("login %s: %w", email, core.ErrUnauthorized)
	}

	p.mu.Lock()
	p.currentUserID = id
	p.mu.Unlock()

	return p.getUser(ctx, id)
}

// LoadUser returns the session user, or the zero User when nobody is
// logged in.
func (p *Platform) LoadUser(ctx context.Context) (User, error) {
	p.mu.Lock()
	id := p.currentUserID
	p.mu.Unlock()

	if id == "" {
		return User{}, nil
	}
	return p.getUser(ctx, id)
}

// EndSession forgets the session user.
func (p *Platform) EndSession(ctx context.Context) error {
	p.mu.Lock()
	p.currentUserID = ""
	p.mu.Unlock()
	return nil
}

// UpdateProfile changes the session user's profile fields. Empty fields are
// left as they are.
func (p *Platform) UpdateProfile(ctx context.Context, userID, email, firstName, lastName string) (User, error) {
	current, err := p.getUser(ctx, userID)
	if err != nil {
		return User{}, err
	}

	if email == "" {
		email = current.Email
	}
	if firstName == "" {
		firstName = current.FirstName
	}
	if lastName == "" {
		lastName = current.LastName
	}

	_, err = p.db.ExecContext(ctx,
		"UPDATE users SET email = ?, first_name = ?, last_name = ?, updated_at = ? WHERE user_id = ?",
		email, firstName, lastName, p.clk.Now().Format(time.RFC3339), userID)
	if err != nil {
		return User{}, fmt.Errorf("update profile: %w", err)
	}
	return p.getUser(ctx, userID)
}

// ChangePassword swaps the password after verifying the current one.
func (p *Platform) ChangePassword(ctx context.Context, userID, current, replacement string) (User, error) {
	if replacement == "" {
		return User{}, fmt.Errorf("new password is required: %w", core.ErrInvalidInput)
	}

	var hash string
	err := p.db.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE user_id = ?", userID).Scan(&hash)
	if err == sql.ErrNoRows {
		return User{}, fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
	}
	if err != nil {
		return User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)) != nil {
		return User{}, fmt.Errorf("change password: %w", core.ErrUnauthorized)
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(replacement), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	_, err = p.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ?, updated_at = ? WHERE user_id = ?",
		string(newHash), p.clk.Now().Format(time.RFC3339), userID)
	if err != nil {
		return User{}, fmt.Errorf("change password: %w", err)
	}
	return p.getUser(ctx, userID)
}
