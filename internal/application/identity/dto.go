package identity

import (
	"time"

	"github.com/finbooks/backend/internal/domain/identity"
)

// UserDTO represents user data returned to callers. The password hash
// never appears here.
type UserDTO struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name,omitempty"`
	Role            string    `json:"role"`
	CompanyCode     string    `json:"company_code,omitempty"`
	LocationCode    string    `json:"location_code,omitempty"`
	YearCode        string    `json:"year_code,omitempty"`
	IsAllowed       bool      `json:"is_allowed"`
	AccessibleMenus []string  `json:"accessible_menus"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toUserDTO(u *identity.User) *UserDTO {
	menus := u.AccessibleMenus
	if menus == nil {
		menus = []string{}
	}
	return &UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		FullName:        u.FullName,
		Role:            string(u.Role),
		CompanyCode:     u.CompanyCode,
		LocationCode:    u.LocationCode,
		YearCode:        u.YearCode,
		IsAllowed:       u.IsAllowed,
		AccessibleMenus: menus,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// LoginInput contains credentials presented at login
type LoginInput struct {
	Username string
	Password string
	// Optional scope overrides. When empty the token carries the
	// user's assigned company/location/year.
	CompanyCode  string
	LocationCode string
	YearCode     string
}

// LoginResult carries the issued token and the authenticated user
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        *UserDTO  `json:"user"`
}

// UserListResult represents a paginated user list
type UserListResult struct {
	Users      []*UserDTO `json:"users"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
