package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	PrestasiJenis   = []string{"siswa", "guru", "sekolah"}
	PrestasiTingkat = []string{"sekolah", "kecamatan", "kabupaten", "provinsi", "nasional", "internasional"}
)

type PrestasiBukti struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Type     string `json:"type"` // image | pdf | sertifikat
}

type PrestasiModel struct {
	ID            uuid.UUID                          `gorm:"column:prestasi_id;type:uuid;primaryKey" json:"id"`
	Jenis         string                             `gorm:"type:varchar(20);not null" json:"jenis"`
	Nama          string                             `gorm:"size:150;not null" json:"nama"`
	Prestasi      string                             `gorm:"size:200;not null" json:"prestasi"`
	Deskripsi     string                             `gorm:"type:text" json:"deskripsi"`
	Event         string                             `gorm:"size:200" json:"event"`
	Tingkat       string                             `gorm:"type:varchar(20);not null" json:"tingkat"`
	Kategori      string                             `gorm:"size:100" json:"kategori"`
	Tanggal       time.Time                          `gorm:"not null" json:"tanggal"`
	Tahun         int                                `gorm:"not null;index" json:"tahun"`
	Penyelenggara string                             `gorm:"size:200" json:"penyelenggara"`
	Bukti         datatypes.JSONSlice[PrestasiBukti] `gorm:"type:jsonb" json:"bukti"`
	Peserta       datatypes.JSONSlice[string]        `gorm:"type:jsonb" json:"peserta"`
	Pembimbing    string                             `gorm:"size:150" json:"pembimbing"`
	Published     bool                               `gorm:"not null;default:true" json:"published"`
	Urutan        int                                `gorm:"not null;default:0" json:"urutan"`
	CreatedAt     time.Time                          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PrestasiModel) TableName() string {
	return "prestasis"
}

func (p *PrestasiModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Tahun == 0 && !p.Tanggal.IsZero() {
		p.Tahun = p.Tanggal.Year()
	}
	return nil
}
