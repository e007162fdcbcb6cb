package domain

// Role is one organizational role trimmed to the fields consumed
// downstream.
type Role struct {
	ID              int64  `json:"id"`
	LevelName       string `json:"levelName"`
	RoleDisplayName string `json:"role_display_name"`
}
