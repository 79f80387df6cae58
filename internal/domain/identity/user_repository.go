package identity

import (
	"context"

	"github.com/finbooks/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence.
// Read methods other than FindByUsernameWithHash must never populate
// PasswordHash.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete deletes a user by ID
	Delete(ctx context.Context, id string) error

	// FindByID finds a user by ID, without the password hash
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername finds a user by username, without the password hash
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByUsernameWithHash loads a user including the password hash,
	// for login verification only
	FindByUsernameWithHash(ctx context.Context, username string) (*User, error)

	// FindAll returns users with pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]*User, int64, error)

	// ExistsByUsername checks if a username already exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// CountByLocation counts users referencing (companyCode, locationCode)
	CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error)

	// CountByFinancialYear counts users referencing (companyCode, yearCode)
	CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error)

	// CountByCompany counts users referencing companyCode
	CountByCompany(ctx context.Context, companyCode string) (int64, error)
}
