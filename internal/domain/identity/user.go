package identity

import (
	"regexp"
	"strings"

	"github.com/finbooks/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role is the coarse permission level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Password cost for bcrypt
const bcryptCost = 10

// User is an account scoped to a company, location and financial year.
// The scope fields are optional at the storage level but required to
// log in. PasswordHash never leaves the domain: repositories exclude it
// from default projections and DTOs never carry it.
type User struct {
	shared.BaseEntity
	Username        string
	FullName        string
	Role            Role
	PasswordHash    string
	CompanyCode     string
	LocationCode    string
	YearCode        string
	IsAllowed       bool
	AccessibleMenus []string
}

// NewUser creates a user with a hashed password.
func NewUser(username, password, fullName string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be user or admin")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:      shared.NewBaseEntity(),
		Username:        strings.ToLower(strings.TrimSpace(username)),
		FullName:        strings.TrimSpace(fullName),
		Role:            role,
		PasswordHash:    passwordHash,
		IsAllowed:       true,
		AccessibleMenus: make([]string, 0),
	}, nil
}

// SetPassword replaces the password with a fresh hash.
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	passwordHash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = passwordHash
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SetFullName updates the display name.
func (u *User) SetFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot exceed 200 characters")
	}
	u.FullName = fullName
	return nil
}

// SetRole changes the user's role.
func (u *User) SetRole(role Role) error {
	if !role.Valid() {
		return shared.NewDomainError("INVALID_ROLE", "Role must be user or admin")
	}
	u.Role = role
	return nil
}

// AssignScope binds the user to a company, location and financial year.
// All three are canonical codes.
func (u *User) AssignScope(companyCode, locationCode, yearCode string) {
	u.CompanyCode = companyCode
	u.LocationCode = locationCode
	u.YearCode = yearCode
}

// SetMenus replaces the set of menus the user may open, deduplicated.
func (u *User) SetMenus(menus []string) {
	seen := make(map[string]bool, len(menus))
	unique := make([]string, 0, len(menus))
	for _, m := range menus {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		unique = append(unique, m)
	}
	u.AccessibleMenus = unique
}

// HasMenu reports whether the user may open the given menu. Admins may
// open everything.
func (u *User) HasMenu(menu string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, m := range u.AccessibleMenus {
		if m == menu {
			return true
		}
	}
	return false
}

// Allow re-enables login for the user.
func (u *User) Allow() {
	u.IsAllowed = true
}

// Disallow blocks login without deleting the account.
func (u *User) Disallow() {
	u.IsAllowed = false
}

// CanLogin reports whether login is permitted for this account.
func (u *User) CanLogin() bool {
	return u.IsAllowed
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, hyphens, and dots")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
