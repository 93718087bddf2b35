package user

import "context"

// Repository persists user accounts. Save assigns the next USR-n code.
// Find methods return (nil, nil) when no record matches.
type Repository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, email string) (bool, error)
	FindByCode(ctx context.Context, code string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
