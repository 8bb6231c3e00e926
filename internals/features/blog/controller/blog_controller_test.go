package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/blog/model"
	blogRoute "sekolahku_backend/internals/features/blog/route"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/testutil"
)

func setupBlogApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	configs.JWTSecret = testutil.TestJWTSecret
	db := testutil.OpenTestDB(t, &userModel.UserModel{}, &model.BlogModel{})
	user := testutil.CreateTestUser(t, db, "penulis", "rahasia-123", "admin")
	token := testutil.AuthToken(t, user)

	app := fiber.New()
	blogRoute.BlogRoutes(app, db)
	return app, db, token
}

func postBlog(t *testing.T, app *fiber.App, token string, payload fiber.Map) *http.Response {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/blog", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBlog(t *testing.T, resp *http.Response) model.BlogModel {
	t.Helper()

	var out struct {
		Data model.BlogModel `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	return out.Data
}

func TestCreateBlog(t *testing.T) {
	app, _, token := setupBlogApp(t)

	content := strings.Repeat("kata ", 250)
	resp := postBlog(t, app, token, fiber.Map{
		"title":    "Acara Sekolah",
		"excerpt":  "Ringkasan acara",
		"content":  content,
		"category": "berita",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	blog := decodeBlog(t, resp)
	assert.Equal(t, "acara-sekolah", blog.Slug)
	assert.False(t, blog.Published)
	assert.Nil(t, blog.PublishedAt)
	assert.Equal(t, 2, blog.Meta.Data().ReadTime)
	assert.Equal(t, 250, blog.Meta.Data().WordCount)
	assert.Equal(t, "Test penulis", blog.Author.Data().Name)
	require.NotNil(t, blog.CreatedBy)
}

func TestCreateBlogSlugCollision(t *testing.T) {
	app, _, token := setupBlogApp(t)

	payload := fiber.Map{
		"title":    "Acara Sekolah",
		"excerpt":  "Ringkasan",
		"content":  "isi artikel",
		"category": "berita",
	}
	first := decodeBlog(t, postBlog(t, app, token, payload))
	second := decodeBlog(t, postBlog(t, app, token, payload))

	assert.Equal(t, "acara-sekolah", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "acara-sekolah-"))
}

func TestCreateBlogValidation(t *testing.T) {
	app, _, token := setupBlogApp(t)

	resp := postBlog(t, app, token, fiber.Map{
		"title":    "Tanpa kategori valid",
		"excerpt":  "x",
		"content":  "x",
		"category": "bukan-kategori",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetBlogIncrementsViews(t *testing.T) {
	app, _, token := setupBlogApp(t)

	blog := decodeBlog(t, postBlog(t, app, token, fiber.Map{
		"title":     "Artikel Populer",
		"excerpt":   "x",
		"content":   "isi",
		"category":  "berita",
		"published": true,
	}))

	var last model.BlogModel
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/blog/"+blog.Slug, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		last = decodeBlog(t, resp)
	}

	assert.Equal(t, 2, last.Meta.Data().Views)
}

func TestPublishSetsPublishedAtOnce(t *testing.T) {
	app, _, token := setupBlogApp(t)

	blog := decodeBlog(t, postBlog(t, app, token, fiber.Map{
		"title":    "Draft Dulu",
		"excerpt":  "x",
		"content":  "isi",
		"category": "pengumuman",
	}))
	require.Nil(t, blog.PublishedAt)

	put := func(payload fiber.Map) model.BlogModel {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPut, "/api/blog/"+blog.Slug, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return decodeBlog(t, resp)
	}

	published := put(fiber.Map{"published": true})
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	put(fiber.Map{"published": false})
	republished := put(fiber.Map{"published": true})

	require.NotNil(t, republished.PublishedAt)
	assert.True(t, firstPublishedAt.Equal(*republished.PublishedAt),
		"publishedAt tidak boleh berubah saat publish ulang")
}

func TestMutationWithoutTokenRejected(t *testing.T) {
	app, db, _ := setupBlogApp(t)

	resp := postBlog(t, app, "", fiber.Map{
		"title":    "Tanpa Token",
		"excerpt":  "x",
		"content":  "isi",
		"category": "berita",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.BlogModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteBlogNotFound(t *testing.T) {
	app, _, token := setupBlogApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/blog/tidak-ada", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
