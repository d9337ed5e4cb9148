package models

// Role of the active dashboard viewer.
type Role string

const (
	RoleNone         Role = ""
	RoleOfficer      Role = "officer"
	RoleInvestigator Role = "investigator"
)

// Session describes an authenticated dashboard viewer. Produced by the mocked
// login flow and carried inside the JWT.
type Session struct {
	Role     Role   `json:"role"`
	Username string `json:"username"`
}
