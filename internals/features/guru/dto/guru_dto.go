package dto

import (
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/guru/model"
)

type CreateGuruRequest struct {
	Nama       string                 `json:"nama" validate:"required,min=2"`
	NIP        *string                `json:"nip"`
	NUPTK      *string                `json:"nuptk"`
	Jabatan    []string               `json:"jabatan"`
	Bidang     []string               `json:"bidang"`
	Foto       model.GuruFoto         `json:"foto"`
	Bio        string                 `json:"bio"`
	Pendidikan []model.GuruPendidikan `json:"pendidikan"`
	Pengalaman []model.GuruPengalaman `json:"pengalaman"`
	Kontak     model.GuruKontak       `json:"kontak"`
	Urutan     int                    `json:"urutan"`
	Status     string                 `json:"status" validate:"omitempty,oneof=aktif pensiun mutasi"`
}

type UpdateGuruRequest struct {
	Nama       *string                 `json:"nama" validate:"omitempty,min=2"`
	NIP        *string                 `json:"nip"`
	NUPTK      *string                 `json:"nuptk"`
	Jabatan    *[]string               `json:"jabatan"`
	Bidang     *[]string               `json:"bidang"`
	Foto       *model.GuruFoto         `json:"foto"`
	Bio        *string                 `json:"bio"`
	Pendidikan *[]model.GuruPendidikan `json:"pendidikan"`
	Pengalaman *[]model.GuruPengalaman `json:"pengalaman"`
	Kontak     *model.GuruKontak       `json:"kontak"`
	Urutan     *int                    `json:"urutan"`
	Status     *string                 `json:"status" validate:"omitempty,oneof=aktif pensiun mutasi"`
}

func ToGuruModel(req CreateGuruRequest) model.GuruModel {
	jabatan := req.Jabatan
	if jabatan == nil {
		jabatan = []string{}
	}
	bidang := req.Bidang
	if bidang == nil {
		bidang = []string{}
	}
	return model.GuruModel{
		Nama:       req.Nama,
		NIP:        req.NIP,
		NUPTK:      req.NUPTK,
		Jabatan:    datatypes.NewJSONSlice(jabatan),
		Bidang:     datatypes.NewJSONSlice(bidang),
		Foto:       datatypes.NewJSONType(req.Foto),
		Bio:        req.Bio,
		Pendidikan: datatypes.NewJSONSlice(req.Pendidikan),
		Pengalaman: datatypes.NewJSONSlice(req.Pengalaman),
		Kontak:     datatypes.NewJSONType(req.Kontak),
		Urutan:     req.Urutan,
		Status:     req.Status,
	}
}

func ApplyUpdate(m *model.GuruModel, req UpdateGuruRequest) {
	if req.Nama != nil {
		m.Nama = *req.Nama
	}
	if req.NIP != nil {
		m.NIP = req.NIP
	}
	if req.NUPTK != nil {
		m.NUPTK = req.NUPTK
	}
	if req.Jabatan != nil {
		m.Jabatan = datatypes.NewJSONSlice(*req.Jabatan)
	}
	if req.Bidang != nil {
		m.Bidang = datatypes.NewJSONSlice(*req.Bidang)
	}
	if req.Foto != nil {
		m.Foto = datatypes.NewJSONType(*req.Foto)
	}
	if req.Bio != nil {
		m.Bio = *req.Bio
	}
	if req.Pendidikan != nil {
		m.Pendidikan = datatypes.NewJSONSlice(*req.Pendidikan)
	}
	if req.Pengalaman != nil {
		m.Pengalaman = datatypes.NewJSONSlice(*req.Pengalaman)
	}
	if req.Kontak != nil {
		m.Kontak = datatypes.NewJSONType(*req.Kontak)
	}
	if req.Urutan != nil {
		m.Urutan = *req.Urutan
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
}
