package user

import (
	"context"
	"time"

	"extinsia/internal/domain/user"
)

// PasswordHasher abstracts the bcrypt implementation living in
// infrastructure/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenIssuer mints the JWT pair returned on login and validates
// refresh tokens presented for renewal.
type TokenIssuer interface {
	Issue(u *user.User) (*TokenPair, error)
	// VerifyRefresh returns the user code carried by a valid refresh
	// token. Access tokens and tampered tokens are rejected.
	VerifyRefresh(token string) (string, error)
}

// LoginLimiter throttles repeated failed sign-in attempts per email.
// A nil limiter disables throttling.
type LoginLimiter interface {
	// Allow returns an error when the account is currently locked out.
	Allow(ctx context.Context, email string) error
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}
