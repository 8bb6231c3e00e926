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
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/ekskul/model"
	ekskulRoute "sekolahku_backend/internals/features/ekskul/route"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/testutil"
)

func setupEkskulApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	configs.JWTSecret = testutil.TestJWTSecret
	db := testutil.OpenTestDB(t, &userModel.UserModel{}, &model.EkskulModel{})

	app := fiber.New()
	ekskulRoute.EkskulRoutes(app, db)
	return app, db
}

func seedEkskul(t *testing.T, db *gorm.DB, title, slug string, order int, published bool) model.EkskulModel {
	t.Helper()

	e := model.EkskulModel{
		Title:       title,
		Slug:        slug,
		Description: "deskripsi",
		Pembina:     "Pak Guru",
		Order:       order,
		Published:   published,
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func getEkskul(t *testing.T, app *fiber.App, idOrSlug string) (model.EkskulModel, int) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/ekskul/"+idOrSlug, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out struct {
		Data model.EkskulModel `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return out.Data, resp.StatusCode
}

func TestGetAllEkskulSortedByOrder(t *testing.T) {
	app, db := setupEkskulApp(t)

	seedEkskul(t, db, "Paskibra", "paskibra", 2, true)
	seedEkskul(t, db, "Pramuka", "pramuka", 1, true)
	seedEkskul(t, db, "Futsal", "futsal", 3, false)

	req := httptest.NewRequest(http.MethodGet, "/api/ekskul?published=true", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data  []model.EkskulModel `json:"data"`
		Count int                 `json:"count"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "pramuka", out.Data[0].Slug)
	assert.Equal(t, "paskibra", out.Data[1].Slug)
}

func TestGetEkskulByIDOrSlugIncrementsViews(t *testing.T) {
	app, db := setupEkskulApp(t)

	e := seedEkskul(t, db, "Pramuka", "pramuka", 1, true)

	bySlug, status := getEkskul(t, app, "pramuka")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, bySlug.Meta.Data().Views)

	byID, status := getEkskul(t, app, e.ID.String())
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, byID.Meta.Data().Views)

	_, status = getEkskul(t, app, "tidak-ada")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestEkskulMutationRequiresAuth(t *testing.T) {
	app, db := setupEkskulApp(t)

	e := seedEkskul(t, db, "Pramuka", "pramuka", 1, true)

	req := httptest.NewRequest(http.MethodDelete, "/api/ekskul/"+e.ID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.EkskulModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
