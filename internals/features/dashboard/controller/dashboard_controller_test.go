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

	"sekolahku_backend/internals/configs"
	blogModel "sekolahku_backend/internals/features/blog/model"
	dashboardRoute "sekolahku_backend/internals/features/dashboard/route"
	ekskulModel "sekolahku_backend/internals/features/ekskul/model"
	galeriModel "sekolahku_backend/internals/features/galeri/model"
	guruModel "sekolahku_backend/internals/features/guru/model"
	prestasiModel "sekolahku_backend/internals/features/prestasi/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/testutil"
)

func TestGetDashboard(t *testing.T) {
	configs.JWTSecret = testutil.TestJWTSecret
	db := testutil.OpenTestDB(t,
		&userModel.UserModel{},
		&blogModel.BlogModel{},
		&ekskulModel.EkskulModel{},
		&guruModel.GuruModel{},
		&prestasiModel.PrestasiModel{},
		&galeriModel.GaleriModel{},
	)
	user := testutil.CreateTestUser(t, db, "admin", "rahasia-123", "admin")
	token := testutil.AuthToken(t, user)

	require.NoError(t, db.Create(&blogModel.BlogModel{
		Title: "Terbit", Slug: "terbit", Excerpt: "x", Content: "isi",
		Category: "berita", Published: true,
	}).Error)
	require.NoError(t, db.Create(&blogModel.BlogModel{
		Title: "Draft", Slug: "draft", Excerpt: "x", Content: "isi",
		Category: "berita",
	}).Error)
	require.NoError(t, db.Create(&guruModel.GuruModel{Nama: "Budi", Status: "aktif"}).Error)
	require.NoError(t, db.Create(&guruModel.GuruModel{Nama: "Dewi", Status: "pensiun"}).Error)
	require.NoError(t, db.Create(&prestasiModel.PrestasiModel{
		Jenis: "siswa", Nama: "Andi", Prestasi: "Juara 1", Tingkat: "provinsi",
		Tanggal: time.Now().UTC(), Published: true,
	}).Error)

	app := fiber.New()
	dashboardRoute.DashboardRoutes(app, db)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data struct {
			Counts struct {
				Blog          int64 `json:"blog"`
				BlogPublished int64 `json:"blog_published"`
				GuruAktif     int64 `json:"guru_aktif"`
				Prestasi      int64 `json:"prestasi"`
			} `json:"counts"`
			RecentBlogs []blogModel.BlogModel `json:"recent_blogs"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, int64(2), out.Data.Counts.Blog)
	assert.Equal(t, int64(1), out.Data.Counts.BlogPublished)
	assert.Equal(t, int64(1), out.Data.Counts.GuruAktif)
	assert.Equal(t, int64(1), out.Data.Counts.Prestasi)
	assert.Len(t, out.Data.RecentBlogs, 2)

	// tanpa token → 401
	req = httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
