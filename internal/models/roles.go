package models

// Role names the permission tier of a user.
type Role string

const (
	RoleUser Role = "user"
)
