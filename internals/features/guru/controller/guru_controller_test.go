package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/guru/model"
	guruRoute "sekolahku_backend/internals/features/guru/route"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/testutil"
)

func setupGuruApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	configs.JWTSecret = testutil.TestJWTSecret
	db := testutil.OpenTestDB(t, &userModel.UserModel{}, &model.GuruModel{})

	app := fiber.New()
	guruRoute.GuruRoutes(app, db)
	return app, db
}

func seedGuru(t *testing.T, db *gorm.DB, nama, status string, urutan int, bidang ...string) model.GuruModel {
	t.Helper()

	guru := model.GuruModel{
		Nama:   nama,
		Status: status,
		Urutan: urutan,
		Bidang: datatypes.NewJSONSlice(bidang),
	}
	require.NoError(t, db.Create(&guru).Error)
	return guru
}

func listGuru(t *testing.T, app *fiber.App, query string) []model.GuruModel {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/guru"+query, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data []model.GuruModel `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	return out.Data
}

func TestGetAllGuruFilterStatusAndSort(t *testing.T) {
	app, db := setupGuruApp(t)

	seedGuru(t, db, "Budi", "aktif", 2)
	seedGuru(t, db, "Andi", "aktif", 2)
	seedGuru(t, db, "Citra", "aktif", 1)
	seedGuru(t, db, "Dewi", "pensiun", 0)

	list := listGuru(t, app, "?status=aktif")
	require.Len(t, list, 3)

	// urutan ascending, lalu nama ascending
	assert.Equal(t, "Citra", list[0].Nama)
	assert.Equal(t, "Andi", list[1].Nama)
	assert.Equal(t, "Budi", list[2].Nama)
	for _, g := range list {
		assert.Equal(t, "aktif", g.Status)
	}
}

func TestGetAllGuruFilterBidang(t *testing.T) {
	app, db := setupGuruApp(t)

	seedGuru(t, db, "Budi", "aktif", 1, "Matematika", "Fisika")
	seedGuru(t, db, "Citra", "aktif", 2, "Bahasa Indonesia")

	list := listGuru(t, app, "?bidang=Matematika")
	require.Len(t, list, 1)
	assert.Equal(t, "Budi", list[0].Nama)
}

func TestDeleteGuruNotFound(t *testing.T) {
	app, db := setupGuruApp(t)

	user := testutil.CreateTestUser(t, db, "admin", "rahasia-123", "admin")
	token := testutil.AuthToken(t, user)

	req := httptest.NewRequest(http.MethodDelete, "/api/guru/c4a1f1ee-0000-4000-8000-000000000000", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
