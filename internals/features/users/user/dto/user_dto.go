package dto

import (
	"time"

	"sekolahku_backend/internals/features/users/user/model"
)

// UserDTO: bentuk aman user untuk response (tanpa password).
type UserDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	Role        string     `json:"role"`
	Avatar      *string    `json:"avatar,omitempty"`
	Permissions []string   `json:"permissions"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	perms := []string(m.Permissions)
	if perms == nil {
		perms = []string{}
	}
	return UserDTO{
		ID:          m.ID.String(),
		Name:        m.Name,
		Email:       m.Email,
		Username:    m.Username,
		Role:        m.Role,
		Avatar:      m.Avatar,
		Permissions: perms,
		IsActive:    m.IsActive,
		LastLogin:   m.LastLogin,
		CreatedAt:   m.CreatedAt,
	}
}
