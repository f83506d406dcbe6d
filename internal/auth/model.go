package auth

import "encoding/json"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleManager    Role = "MANAGER"
	RoleMember     Role = "MEMBER"
)

// Attempt is one credential presentation. Role selects which identity path
// is checked; the other fields are interpreted per role (GymID is unused for
// SUPER_ADMIN, Username is unused for MANAGER).
type Attempt struct {
	Role     Role   `json:"role" binding:"required,oneof=SUPER_ADMIN MANAGER MEMBER"`
	GymID    string `json:"gymId"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// Session is the role-tagged login state, mirrored into storage so it
// survives a restart the way the browser original survived a reload.
type Session struct {
	IsAuthenticated bool            `json:"isAuthenticated"`
	Role            Role            `json:"role"`
	User            json.RawMessage `json:"user"`
}

type LoginResponse struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}
