package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Hari jadwal ekskul yang valid (tanpa Minggu).
var EkskulDays = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

type EkskulImage struct {
	URL        string `json:"url"`
	PublicID   string `json:"public_id"`
	Caption    string `json:"caption,omitempty"`
	IsFeatured bool   `json:"is_featured"`
}

type EkskulJadwal struct {
	Hari       string `json:"hari"`
	JamMulai   string `json:"jam_mulai"`
	JamSelesai string `json:"jam_selesai"`
	Tempat     string `json:"tempat"`
}

type EkskulMeta struct {
	Views  int `json:"views"`
	Likes  int `json:"likes"`
	Shares int `json:"shares"`
}

type EkskulModel struct {
	ID          uuid.UUID                         `gorm:"column:ekskul_id;type:uuid;primaryKey" json:"id"`
	Title       string                            `gorm:"size:255;not null" json:"title"`
	Slug        string                            `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Description string                            `gorm:"type:text;not null" json:"description"`
	Content     string                            `gorm:"type:text" json:"content"`
	Images      datatypes.JSONSlice[EkskulImage]  `gorm:"type:jsonb" json:"images"`
	Pembina     string                            `gorm:"size:100;not null" json:"pembina"`
	Ketua       string                            `gorm:"size:100" json:"ketua"`
	Wakil       string                            `gorm:"size:100" json:"wakil"`
	Jadwal      datatypes.JSONSlice[EkskulJadwal] `gorm:"type:jsonb" json:"jadwal"`
	Kuota       int                               `gorm:"not null;default:0" json:"kuota"`
	Peserta     int                               `gorm:"not null;default:0" json:"peserta"`
	Published   bool                              `gorm:"not null;default:false" json:"published"`
	Featured    bool                              `gorm:"not null;default:false" json:"featured"`
	Order       int                               `gorm:"column:sort_order;not null;default:0" json:"order"`
	Meta        datatypes.JSONType[EkskulMeta]    `gorm:"type:jsonb" json:"meta"`
	CreatedBy   *uuid.UUID                        `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedBy   *uuid.UUID                        `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt   time.Time                         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EkskulModel) TableName() string {
	return "ekskuls"
}

func (e *EkskulModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
