package dto

import (
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/ekskul/model"
)

type JadwalRequest struct {
	Hari       string `json:"hari" validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu"`
	JamMulai   string `json:"jam_mulai" validate:"required"`
	JamSelesai string `json:"jam_selesai" validate:"required"`
	Tempat     string `json:"tempat" validate:"required"`
}

type CreateEkskulRequest struct {
	Title       string              `json:"title" validate:"required,min=3"`
	Slug        string              `json:"slug" validate:"omitempty,max=160"`
	Description string              `json:"description" validate:"required"`
	Content     string              `json:"content"`
	Images      []model.EkskulImage `json:"images"`
	Pembina     string              `json:"pembina" validate:"required"`
	Ketua       string              `json:"ketua"`
	Wakil       string              `json:"wakil"`
	Jadwal      []JadwalRequest     `json:"jadwal" validate:"dive"`
	Kuota       int                 `json:"kuota" validate:"gte=0"`
	Peserta     int                 `json:"peserta" validate:"gte=0"`
	Published   bool                `json:"published"`
	Featured    bool                `json:"featured"`
	Order       int                 `json:"order"`
}

type UpdateEkskulRequest struct {
	Title       *string              `json:"title" validate:"omitempty,min=3"`
	Description *string              `json:"description"`
	Content     *string              `json:"content"`
	Images      *[]model.EkskulImage `json:"images"`
	Pembina     *string              `json:"pembina"`
	Ketua       *string              `json:"ketua"`
	Wakil       *string              `json:"wakil"`
	Jadwal      *[]JadwalRequest     `json:"jadwal" validate:"omitempty,dive"`
	Kuota       *int                 `json:"kuota" validate:"omitempty,gte=0"`
	Peserta     *int                 `json:"peserta" validate:"omitempty,gte=0"`
	Published   *bool                `json:"published"`
	Featured    *bool                `json:"featured"`
	Order       *int                 `json:"order"`
}

func toJadwal(reqs []JadwalRequest) []model.EkskulJadwal {
	out := make([]model.EkskulJadwal, 0, len(reqs))
	for _, j := range reqs {
		out = append(out, model.EkskulJadwal{
			Hari:       j.Hari,
			JamMulai:   j.JamMulai,
			JamSelesai: j.JamSelesai,
			Tempat:     j.Tempat,
		})
	}
	return out
}

func ToEkskulModel(req CreateEkskulRequest) model.EkskulModel {
	images := req.Images
	if images == nil {
		images = []model.EkskulImage{}
	}
	return model.EkskulModel{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		Images:      datatypes.NewJSONSlice(images),
		Pembina:     req.Pembina,
		Ketua:       req.Ketua,
		Wakil:       req.Wakil,
		Jadwal:      datatypes.NewJSONSlice(toJadwal(req.Jadwal)),
		Kuota:       req.Kuota,
		Peserta:     req.Peserta,
		Published:   req.Published,
		Featured:    req.Featured,
		Order:       req.Order,
	}
}

func ApplyUpdate(m *model.EkskulModel, req UpdateEkskulRequest) {
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Content != nil {
		m.Content = *req.Content
	}
	if req.Images != nil {
		m.Images = datatypes.NewJSONSlice(*req.Images)
	}
	if req.Pembina != nil {
		m.Pembina = *req.Pembina
	}
	if req.Ketua != nil {
		m.Ketua = *req.Ketua
	}
	if req.Wakil != nil {
		m.Wakil = *req.Wakil
	}
	if req.Jadwal != nil {
		m.Jadwal = datatypes.NewJSONSlice(toJadwal(*req.Jadwal))
	}
	if req.Kuota != nil {
		m.Kuota = *req.Kuota
	}
	if req.Peserta != nil {
		m.Peserta = *req.Peserta
	}
	if req.Published != nil {
		m.Published = *req.Published
	}
	if req.Featured != nil {
		m.Featured = *req.Featured
	}
	if req.Order != nil {
		m.Order = *req.Order
	}
}
