package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/galeri/model"
	galeriRoute "sekolahku_backend/internals/features/galeri/route"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/testutil"
)

func setupGaleriApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	configs.JWTSecret = testutil.TestJWTSecret
	db := testutil.OpenTestDB(t, &userModel.UserModel{}, &model.GaleriModel{})

	app := fiber.New()
	galeriRoute.GaleriRoutes(app, db)
	return app, db
}

func seedGaleri(t *testing.T, db *gorm.DB, judul, slug, kategori string, published bool) model.GaleriModel {
	t.Helper()

	g := model.GaleriModel{
		Judul:     judul,
		Slug:      slug,
		Kategori:  kategori,
		Tanggal:   time.Now().UTC(),
		Published: published,
	}
	require.NoError(t, db.Create(&g).Error)
	return g
}

func listGaleri(t *testing.T, app *fiber.App, query string) []model.GaleriModel {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/galeri"+query, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data []model.GaleriModel `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	return out.Data
}

func TestGetAllGaleriFilters(t *testing.T) {
	app, db := setupGaleriApp(t)

	seedGaleri(t, db, "Lomba 17an", "lomba-17an", "acara", true)
	seedGaleri(t, db, "Gedung Baru", "gedung-baru", "infrastruktur", false)

	// tanpa filter → semua ikut, termasuk draft
	assert.Len(t, listGaleri(t, app, ""), 2)

	// published=true → draft tersembunyi
	published := listGaleri(t, app, "?published=true")
	require.Len(t, published, 1)
	assert.Equal(t, "lomba-17an", published[0].Slug)

	// filter kategori
	infra := listGaleri(t, app, "?kategori=infrastruktur")
	require.Len(t, infra, 1)
	assert.Equal(t, "gedung-baru", infra[0].Slug)
}

func TestGetGaleriIncrementsViews(t *testing.T) {
	app, db := setupGaleriApp(t)

	g := seedGaleri(t, db, "Lomba 17an", "lomba-17an", "acara", true)

	for i := 1; i <= 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/galeri/lomba-17an", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var fresh model.GaleriModel
	require.NoError(t, db.First(&fresh, "galeri_id = ?", g.ID).Error)
	assert.Equal(t, 2, fresh.Views)
}
