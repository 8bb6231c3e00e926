package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/blog/dto"
	"sekolahku_backend/internals/features/blog/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type BlogController struct {
	DB *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db}
}

// 📄 GET /api/blog — list publik (filter published/featured/category, paginated)
func (ctrl *BlogController) GetAllBlogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.Model(&model.BlogModel{})
	if c.Query("published") == "true" {
		q = q.Where("published = ?", true)
	}
	if c.Query("featured") == "true" {
		q = q.Where("featured = ?", true)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	var blogs []model.BlogModel
	if err := q.
		Order("published_at DESC, created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&blogs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	pagination := helper.BuildPagination(total, paging)
	return helper.JsonList(c, blogs, len(blogs), &pagination)
}

// ➕ POST /api/blog — buat blog (auth)
func (ctrl *BlogController) CreateBlog(c *fiber.Ctx) error {
	var req dto.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	blog := dto.ToBlogModel(req)

	// Slug dari judul bila tidak dikirim; collision → suffix timestamp
	if blog.Slug == "" {
		blog.Slug = helper.Slugify(blog.Title, 100)
	}
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, "blogs", "slug", blog.Slug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
	blog.Slug = slug

	// Derivasi meta dari konten (fungsi murni, bukan hook persistensi)
	blog.Meta = datatypes.NewJSONType(model.BlogMeta{
		Views:     0,
		ReadTime:  helper.ReadTime(blog.Content),
		WordCount: helper.CountWords(blog.Content),
	})

	if blog.Published {
		now := time.Now().UTC()
		blog.PublishedAt = &now
	}

	// Stamp identitas pembuat + snapshot penulis
	if userID, err := uuid.Parse(c.Locals(authMW.LocUserID).(string)); err == nil {
		blog.CreatedBy = &userID
		blog.UpdatedBy = &userID

		var user userModel.UserModel
		if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err == nil {
			author := model.BlogAuthor{Name: user.Name}
			if user.Avatar != nil {
				author.Avatar = *user.Avatar
			}
			blog.Author = datatypes.NewJSONType(author)
		}
	}

	if err := ctrl.DB.Create(&blog).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat blog")
	}

	return helper.JsonCreated(c, "Blog berhasil dibuat", blog)
}

// 📄 GET /api/blog/:slug — detail publik, views +1
func (ctrl *BlogController) GetBlogBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var blog model.BlogModel
	if err := ctrl.DB.First(&blog, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	// read-modify-write tanpa lock; race under-count diterima
	meta := blog.Meta.Data()
	meta.Views++
	blog.Meta = datatypes.NewJSONType(meta)
	if err := ctrl.DB.Model(&model.BlogModel{}).
		Where("blog_id = ?", blog.ID).
		UpdateColumn("meta", blog.Meta).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	return helper.JsonOK(c, "", blog)
}

// 🔄 PUT /api/blog/:slug — partial update (auth)
func (ctrl *BlogController) UpdateBlog(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var blog model.BlogModel
	if err := ctrl.DB.First(&blog, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}

	var req dto.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	wasPublished := blog.Published
	contentChanged := dto.ApplyUpdate(&blog, req)

	if contentChanged {
		meta := blog.Meta.Data()
		meta.ReadTime = helper.ReadTime(blog.Content)
		meta.WordCount = helper.CountWords(blog.Content)
		blog.Meta = datatypes.NewJSONType(meta)
	}

	// publishedAt diset sekali saja: transisi publish pertama
	if blog.Published && !wasPublished && blog.PublishedAt == nil {
		now := time.Now().UTC()
		blog.PublishedAt = &now
	}

	if userID, err := uuid.Parse(c.Locals(authMW.LocUserID).(string)); err == nil {
		blog.UpdatedBy = &userID
	}

	if err := ctrl.DB.Save(&blog).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update blog")
	}

	return helper.JsonUpdated(c, "Blog berhasil diupdate", blog)
}

// 🗑 DELETE /api/blog/:slug (auth)
func (ctrl *BlogController) DeleteBlog(c *fiber.Ctx) error {
	slug := c.Params("slug")

	res := ctrl.DB.Where("slug = ?", slug).Delete(&model.BlogModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus blog")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Blog tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Blog berhasil dihapus")
}
