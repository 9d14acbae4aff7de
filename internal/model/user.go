package model

// Role values.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleMember = "member"
)

// Membership tiers, lowest first.
const (
	TierMember = "member"
	TierVIP    = "vip"
	TierVVIP   = "vvip"
)

// Tiers lists the membership tiers, lowest first.
var Tiers = []string{TierMember, TierVIP, TierVVIP}

// User status values.
const (
	UserActive   = "active"
	UserInactive = "inactive"
	UserBanned   = "banned"
)

// User represents an account.  PasswordHash holds a bcrypt hash and is
// never serialised.
//
// Fields:
//
//	ID           – surrogate key.
//	Username     – display/login name.
//	Email        – login email.
//	PasswordHash – bcrypt hash.
//	Role         – admin, staff or member.
//	Tier         – member, vip or vvip.
//	Status       – active, inactive or banned.
//	CreatedAt    – RFC 3339 timestamp.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	Tier         string `json:"tier"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// Membership tracks loyalty points and lifetime spend of a user.
type Membership struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Tier       string `json:"tier"`
	Points     int64  `json:"points"`
	TotalSpent int64  `json:"total_spent"`
	UpgradedAt string `json:"upgraded_at"`
}

// Profile is a user merged with its membership totals.  It is the record
// kept for the signed-in user of a session.
type Profile struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Tier       string `json:"tier"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	Points     int64  `json:"points"`
	TotalSpent int64  `json:"total_spent"`
}

// NewProfile merges u with m.  A nil membership yields zero totals.
func NewProfile(u User, m *Membership) Profile {
	p := Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Tier:      u.Tier,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
	if m != nil {
		p.Points = m.Points
		p.TotalSpent = m.TotalSpent
	}
	return p
}
