package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users (akun panel admin).
// Password tidak pernah ikut serialisasi JSON.
type UserModel struct {
	ID          uuid.UUID                   `gorm:"column:user_id;type:uuid;primaryKey" json:"id"`
	Name        string                      `gorm:"size:100;not null" json:"name"`
	Email       string                      `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username    string                      `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password    string                      `gorm:"not null" json:"-"`
	Role        string                      `gorm:"type:varchar(20);not null;default:'editor'" json:"role"`
	Avatar      *string                     `gorm:"size:255" json:"avatar,omitempty"`
	Permissions datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"permissions"`
	IsActive    bool                        `gorm:"not null;default:true" json:"is_active"`
	LastLogin   *time.Time                  `json:"last_login,omitempty"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = "editor"
	}
	return nil
}
