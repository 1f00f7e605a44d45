package model

import "time"

// Role 使用者角色，註冊時決定，之後不可自行升級
type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleOrganizer
}

type User struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpdateUserParams struct {
	DisplayName *string
}
