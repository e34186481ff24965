package domain

// Role is the access level of a club member.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

// Identity represents an authenticated club member. The secret never
// appears here; it lives only in the roster entry.
type Identity struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Role      Role   `json:"role"`
}

// RosterEntry is one fixed credential triple. The roster is seeded at
// process start and never mutated at runtime.
type RosterEntry struct {
	Identity Identity
	Secret   string
}

// SessionService manages the single current identity.
type SessionService interface {
	Restore()
	Login(username, password string) (*Identity, error)
	Logout()
	Current() *Identity
	IsAuthenticated() bool
}

// SessionRepository persists the current identity snapshot.
type SessionRepository interface {
	Load() (*Identity, error)
	Save(identity *Identity) error
	Clear() error
}
