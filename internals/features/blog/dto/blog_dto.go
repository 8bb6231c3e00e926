package dto

import (
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/blog/model"
)

// ============================
// Create Request DTO
// ============================
type CreateBlogRequest struct {
	Title         string                `json:"title" validate:"required,min=3"`
	Slug          string                `json:"slug" validate:"omitempty,max=160"`
	Excerpt       string                `json:"excerpt" validate:"required,max=300"`
	Content       string                `json:"content" validate:"required"`
	CoverImage    model.BlogCoverImage  `json:"cover_image"`
	Category      string                `json:"category" validate:"required,oneof=berita pengumuman kegiatan prestasi"`
	Tags          []string              `json:"tags"`
	Published     bool                  `json:"published"`
	Featured      bool                  `json:"featured"`
	AllowComments *bool                 `json:"allow_comments"`
	SEO           *model.BlogSEO        `json:"seo"`
}

// ============================
// Update Request DTO (partial merge)
// ============================
type UpdateBlogRequest struct {
	Title         *string               `json:"title" validate:"omitempty,min=3"`
	Excerpt       *string               `json:"excerpt" validate:"omitempty,max=300"`
	Content       *string               `json:"content"`
	CoverImage    *model.BlogCoverImage `json:"cover_image"`
	Category      *string               `json:"category" validate:"omitempty,oneof=berita pengumuman kegiatan prestasi"`
	Tags          *[]string             `json:"tags"`
	Published     *bool                 `json:"published"`
	Featured      *bool                 `json:"featured"`
	AllowComments *bool                 `json:"allow_comments"`
	SEO           *model.BlogSEO        `json:"seo"`
}

// ============================
// Converter
// ============================
func ToBlogModel(req CreateBlogRequest) model.BlogModel {
	allowComments := true
	if req.AllowComments != nil {
		allowComments = *req.AllowComments
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	m := model.BlogModel{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImage:    datatypes.NewJSONType(req.CoverImage),
		Category:      req.Category,
		Tags:          datatypes.NewJSONSlice(tags),
		Published:     req.Published,
		Featured:      req.Featured,
		AllowComments: allowComments,
	}
	if req.SEO != nil {
		m.SEO = datatypes.NewJSONType(*req.SEO)
	}
	return m
}

// ApplyUpdate: merge field yang dikirim saja ke model.
func ApplyUpdate(m *model.BlogModel, req UpdateBlogRequest) (contentChanged bool) {
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Excerpt != nil {
		m.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		m.Content = *req.Content
		contentChanged = true
	}
	if req.CoverImage != nil {
		m.CoverImage = datatypes.NewJSONType(*req.CoverImage)
	}
	if req.Category != nil {
		m.Category = *req.Category
	}
	if req.Tags != nil {
		m.Tags = datatypes.NewJSONSlice(*req.Tags)
	}
	if req.Published != nil {
		m.Published = *req.Published
	}
	if req.Featured != nil {
		m.Featured = *req.Featured
	}
	if req.AllowComments != nil {
		m.AllowComments = *req.AllowComments
	}
	if req.SEO != nil {
		m.SEO = datatypes.NewJSONType(*req.SEO)
	}
	return contentChanged
}
