package domain

import "time"

const (
	RoleBuyer         = "buyer"
	RoleSeller        = "seller"
	RolePlatformAdmin = "platform_admin"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller || role == RolePlatformAdmin
}

// User models an account on the platform. A user may hold local credentials,
// an OAuth linkage, or both (after an email merge).
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	OAuthProviderID string    `json:"-"`
	Role            string    `json:"role"`
	IsPlatformAdmin bool      `json:"is_platform_admin"`
	SellerID        string    `json:"seller_id,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	IsOAuthAccount  bool      `json:"is_oauth_account"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SetRole changes the account role and recomputes IsPlatformAdmin so the
// derived flag never drifts from the role. All role writes go through here.
func (u *User) SetRole(role string) {
	u.Role = role
	u.IsPlatformAdmin = role == RolePlatformAdmin
}
