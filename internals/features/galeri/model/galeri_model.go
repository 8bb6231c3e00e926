package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var GaleriCategories = []string{"kegiatan", "ekskul", "acara", "infrastruktur"}

type GaleriCoverImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type GaleriImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Caption  string `json:"caption,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

type GaleriModel struct {
	ID         uuid.UUID                            `gorm:"column:galeri_id;type:uuid;primaryKey" json:"id"`
	Judul      string                               `gorm:"size:150;not null" json:"judul"`
	Slug       string                               `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Deskripsi  string                               `gorm:"type:text" json:"deskripsi"`
	Kategori   string                               `gorm:"type:varchar(20);not null" json:"kategori"`
	CoverImage datatypes.JSONType[GaleriCoverImage] `gorm:"type:jsonb" json:"cover_image"`
	Images     datatypes.JSONSlice[GaleriImage]     `gorm:"type:jsonb" json:"images"`
	Tanggal    time.Time                            `gorm:"not null" json:"tanggal"`
	Published  bool                                 `gorm:"not null;default:false" json:"published"`
	Views      int                                  `gorm:"not null;default:0" json:"views"`
	CreatedBy  *uuid.UUID                           `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt  time.Time                            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time                            `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GaleriModel) TableName() string {
	return "galeris"
}

func (g *GaleriModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
