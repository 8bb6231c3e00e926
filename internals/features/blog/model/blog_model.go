package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Kategori blog yang diizinkan.
var BlogCategories = []string{"berita", "pengumuman", "kegiatan", "prestasi"}

type BlogCoverImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Alt      string `json:"alt"`
}

// BlogAuthor: snapshot penulis saat artikel dibuat — TIDAK mengikuti
// perubahan profil user setelahnya.
type BlogAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type BlogMeta struct {
	Views     int `json:"views"`
	ReadTime  int `json:"read_time"`
	WordCount int `json:"word_count"`
}

type BlogSEO struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	OGImage     string   `json:"og_image,omitempty"`
}

type BlogModel struct {
	ID            uuid.UUID                          `gorm:"column:blog_id;type:uuid;primaryKey" json:"id"`
	Title         string                             `gorm:"size:255;not null" json:"title"`
	Slug          string                             `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Excerpt       string                             `gorm:"size:300;not null" json:"excerpt"`
	Content       string                             `gorm:"type:text;not null" json:"content"`
	CoverImage    datatypes.JSONType[BlogCoverImage] `gorm:"type:jsonb" json:"cover_image"`
	Author        datatypes.JSONType[BlogAuthor]     `gorm:"type:jsonb" json:"author"`
	Category      string                             `gorm:"type:varchar(20);not null" json:"category"`
	Tags          datatypes.JSONSlice[string]        `gorm:"type:jsonb" json:"tags"`
	Published     bool                               `gorm:"not null;default:false" json:"published"`
	PublishedAt   *time.Time                         `json:"published_at,omitempty"`
	Featured      bool                               `gorm:"not null;default:false" json:"featured"`
	AllowComments bool                               `gorm:"not null;default:true" json:"allow_comments"`
	Meta          datatypes.JSONType[BlogMeta]       `gorm:"type:jsonb" json:"meta"`
	SEO           datatypes.JSONType[BlogSEO]        `gorm:"type:jsonb" json:"seo"`
	CreatedBy     *uuid.UUID                         `gorm:"type:uuid" json:"created_by,omitempty"`
	UpdatedBy     *uuid.UUID                         `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt     time.Time                          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BlogModel) TableName() string {
	return "blogs"
}

func (b *BlogModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
