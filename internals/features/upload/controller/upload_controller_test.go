package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/configs"
	uploadRoute "sekolahku_backend/internals/features/upload/route"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/helpers/storage"
	"sekolahku_backend/internals/testutil"
)

// fakeMedia merekam panggilan upload/delete tanpa menyentuh media host beneran.
type fakeMedia struct {
	uploads []string // folder per panggilan
	deleted []string
	fail    bool
}

func (f *fakeMedia) UploadImage(_ context.Context, fh *multipart.FileHeader, folder string) (storage.UploadResult, error) {
	if f.fail {
		return storage.UploadResult{}, assert.AnError
	}
	f.uploads = append(f.uploads, folder)
	return storage.UploadResult{
		URL:      "https://cdn.example.com/" + folder + "/" + fh.Filename,
		PublicID: folder + "/" + fh.Filename,
		Format:   "jpeg",
		Bytes:    fh.Size,
	}, nil
}

func (f *fakeMedia) Delete(_ context.Context, publicID string) (bool, error) {
	if f.fail {
		return false, assert.AnError
	}
	f.deleted = append(f.deleted, publicID)
	return true, nil
}

func setupUploadApp(t *testing.T, media storage.Service) (*fiber.App, string) {
	t.Helper()

	configs.JWTSecret = testutil.TestJWTSecret
	db := testutil.OpenTestDB(t, &userModel.UserModel{})
	user := testutil.CreateTestUser(t, db, "admin", "rahasia-123", "admin")
	token := testutil.AuthToken(t, user)

	app := fiber.New()
	uploadRoute.UploadRoutes(app, media)
	return app, token
}

func multipartBody(t *testing.T, files map[string]string, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, content := range files {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestUploadImages(t *testing.T) {
	media := &fakeMedia{}
	app, token := setupUploadApp(t, media)

	body, ct := multipartBody(t, map[string]string{"foto.jpg": "isi-gambar"}, "image/jpeg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Data []storage.UploadResult `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Data, 1)
	assert.NotEmpty(t, out.Data[0].URL)
	assert.NotEmpty(t, out.Data[0].PublicID)

	// folder default "sekolah"
	require.Len(t, media.uploads, 1)
	assert.Equal(t, "sekolah", media.uploads[0])
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	media := &fakeMedia{}
	app, token := setupUploadApp(t, media)

	body, ct := multipartBody(t, map[string]string{"virus.exe": "MZ"}, "application/octet-stream")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, media.uploads, "file invalid tidak boleh sampai ke media host")
}

func TestUploadRequiresAuth(t *testing.T) {
	app, _ := setupUploadApp(t, &fakeMedia{})

	body, ct := multipartBody(t, map[string]string{"foto.jpg": "isi"}, "image/jpeg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteImage(t *testing.T) {
	media := &fakeMedia{}
	app, token := setupUploadApp(t, media)

	payload, _ := json.Marshal(fiber.Map{"public_id": "sekolah/foto.jpg"})
	req := httptest.NewRequest(http.MethodDelete, "/api/upload", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"sekolah/foto.jpg"}, media.deleted)

	// tanpa public_id → 400
	req = httptest.NewRequest(http.MethodDelete, "/api/upload", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadWithoutConfiguredHost(t *testing.T) {
	app, token := setupUploadApp(t, nil)

	body, ct := multipartBody(t, map[string]string{"foto.jpg": "isi"}, "image/jpeg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
