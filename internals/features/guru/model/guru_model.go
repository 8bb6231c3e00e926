package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var GuruStatuses = []string{"aktif", "pensiun", "mutasi"}

type GuruFoto struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type GuruPendidikan struct {
	Jenjang   string `json:"jenjang"`
	Jurusan   string `json:"jurusan"`
	Institusi string `json:"institusi"`
	Tahun     int    `json:"tahun"`
}

type GuruPengalaman struct {
	Posisi       string `json:"posisi"`
	Institusi    string `json:"institusi"`
	TahunMulai   int    `json:"tahun_mulai"`
	TahunSelesai *int   `json:"tahun_selesai,omitempty"`
}

type GuruKontak struct {
	Email   string `json:"email,omitempty"`
	Telepon string `json:"telepon,omitempty"`
}

type GuruModel struct {
	ID         uuid.UUID                           `gorm:"column:guru_id;type:uuid;primaryKey" json:"id"`
	Nama       string                              `gorm:"size:100;not null" json:"nama"`
	NIP        *string                             `gorm:"column:nip;size:30" json:"nip,omitempty"`
	NUPTK      *string                             `gorm:"column:nuptk;size:30" json:"nuptk,omitempty"`
	Jabatan    datatypes.JSONSlice[string]         `gorm:"type:jsonb" json:"jabatan"`
	Bidang     datatypes.JSONSlice[string]         `gorm:"type:jsonb" json:"bidang"`
	Foto       datatypes.JSONType[GuruFoto]        `gorm:"type:jsonb" json:"foto"`
	Bio        string                              `gorm:"type:text" json:"bio"`
	Pendidikan datatypes.JSONSlice[GuruPendidikan] `gorm:"type:jsonb" json:"pendidikan"`
	Pengalaman datatypes.JSONSlice[GuruPengalaman] `gorm:"type:jsonb" json:"pengalaman"`
	Kontak     datatypes.JSONType[GuruKontak]      `gorm:"type:jsonb" json:"kontak"`
	Urutan     int                                 `gorm:"not null;default:0" json:"urutan"`
	Status     string                              `gorm:"type:varchar(20);not null;default:'aktif'" json:"status"`
	CreatedAt  time.Time                           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time                           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GuruModel) TableName() string {
	return "gurus"
}

func (g *GuruModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = "aktif"
	}
	return nil
}
