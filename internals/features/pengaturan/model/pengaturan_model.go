package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	PengaturanCategories = []string{"umum", "tampilan", "seo", "sosial", "email"}
	PengaturanTypes      = []string{"text", "number", "boolean", "textarea", "image", "json"}
)

type PengaturanModel struct {
	ID        uuid.UUID      `gorm:"column:pengaturan_id;type:uuid;primaryKey" json:"id"`
	Kategori  string         `gorm:"type:varchar(20);not null;default:'umum'" json:"kategori"`
	Key       string         `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb" json:"value"`
	Label     string         `gorm:"size:150" json:"label"`
	Type      string         `gorm:"type:varchar(20);not null;default:'text'" json:"type"`
	Group     string         `gorm:"column:group_name;size:50" json:"group"`
	Order     int            `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PengaturanModel) TableName() string {
	return "pengaturans"
}

func (p *PengaturanModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Key = strings.ToLower(strings.TrimSpace(p.Key))
	if p.Kategori == "" {
		p.Kategori = "umum"
	}
	if p.Type == "" {
		p.Type = "text"
	}
	return nil
}
