package dto

import (
	"time"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/prestasi/model"
)

type CreatePrestasiRequest struct {
	Jenis         string                `json:"jenis" validate:"required,oneof=siswa guru sekolah"`
	Nama          string                `json:"nama" validate:"required"`
	Prestasi      string                `json:"prestasi" validate:"required"`
	Deskripsi     string                `json:"deskripsi"`
	Event         string                `json:"event"`
	Tingkat       string                `json:"tingkat" validate:"required,oneof=sekolah kecamatan kabupaten provinsi nasional internasional"`
	Kategori      string                `json:"kategori"`
	Tanggal       string                `json:"tanggal" validate:"required"`
	Tahun         int                   `json:"tahun"`
	Penyelenggara string                `json:"penyelenggara"`
	Bukti         []model.PrestasiBukti `json:"bukti"`
	Peserta       []string              `json:"peserta"`
	Pembimbing    string                `json:"pembimbing"`
	Published     *bool                 `json:"published"`
	Urutan        int                   `json:"urutan"`
}

type UpdatePrestasiRequest struct {
	Jenis         *string                `json:"jenis" validate:"omitempty,oneof=siswa guru sekolah"`
	Nama          *string                `json:"nama"`
	Prestasi      *string                `json:"prestasi"`
	Deskripsi     *string                `json:"deskripsi"`
	Event         *string                `json:"event"`
	Tingkat       *string                `json:"tingkat" validate:"omitempty,oneof=sekolah kecamatan kabupaten provinsi nasional internasional"`
	Kategori      *string                `json:"kategori"`
	Tanggal       *string                `json:"tanggal"`
	Tahun         *int                   `json:"tahun"`
	Penyelenggara *string                `json:"penyelenggara"`
	Bukti         *[]model.PrestasiBukti `json:"bukti"`
	Peserta       *[]string              `json:"peserta"`
	Pembimbing    *string                `json:"pembimbing"`
	Published     *bool                  `json:"published"`
	Urutan        *int                   `json:"urutan"`
}

// ParseTanggal menerima RFC3339 atau format tanggal pendek (YYYY-MM-DD).
func ParseTanggal(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func ToPrestasiModel(req CreatePrestasiRequest, tanggal time.Time) model.PrestasiModel {
	peserta := req.Peserta
	if peserta == nil {
		peserta = []string{}
	}
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	tahun := req.Tahun
	if tahun == 0 {
		tahun = tanggal.Year()
	}
	return model.PrestasiModel{
		Jenis:         req.Jenis,
		Nama:          req.Nama,
		Prestasi:      req.Prestasi,
		Deskripsi:     req.Deskripsi,
		Event:         req.Event,
		Tingkat:       req.Tingkat,
		Kategori:      req.Kategori,
		Tanggal:       tanggal,
		Tahun:         tahun,
		Penyelenggara: req.Penyelenggara,
		Bukti:         datatypes.NewJSONSlice(req.Bukti),
		Peserta:       datatypes.NewJSONSlice(peserta),
		Pembimbing:    req.Pembimbing,
		Published:     published,
		Urutan:        req.Urutan,
	}
}

func ApplyUpdate(m *model.PrestasiModel, req UpdatePrestasiRequest) error {
	if req.Jenis != nil {
		m.Jenis = *req.Jenis
	}
	if req.Nama != nil {
		m.Nama = *req.Nama
	}
	if req.Prestasi != nil {
		m.Prestasi = *req.Prestasi
	}
	if req.Deskripsi != nil {
		m.Deskripsi = *req.Deskripsi
	}
	if req.Event != nil {
		m.Event = *req.Event
	}
	if req.Tingkat != nil {
		m.Tingkat = *req.Tingkat
	}
	if req.Kategori != nil {
		m.Kategori = *req.Kategori
	}
	if req.Tanggal != nil {
		t, err := ParseTanggal(*req.Tanggal)
		if err != nil {
			return err
		}
		m.Tanggal = t
		if req.Tahun == nil {
			m.Tahun = t.Year()
		}
	}
	if req.Tahun != nil {
		m.Tahun = *req.Tahun
	}
	if req.Penyelenggara != nil {
		m.Penyelenggara = *req.Penyelenggara
	}
	if req.Bukti != nil {
		m.Bukti = datatypes.NewJSONSlice(*req.Bukti)
	}
	if req.Peserta != nil {
		m.Peserta = datatypes.NewJSONSlice(*req.Peserta)
	}
	if req.Pembimbing != nil {
		m.Pembimbing = *req.Pembimbing
	}
	if req.Published != nil {
		m.Published = *req.Published
	}
	if req.Urutan != nil {
		m.Urutan = *req.Urutan
	}
	return nil
}
