// file: internals/helpers/storage/oss.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
)

// OSSService: implementasi Service di atas Aliyun OSS.
type OSSService struct {
	bucket     *oss.Bucket
	publicBase string
}

// NewOSSServiceFromEnv membaca OSS_ENDPOINT, OSS_ACCESS_KEY_ID,
// OSS_ACCESS_KEY_SECRET, OSS_BUCKET, OSS_PUBLIC_BASE_URL (opsional).
func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := configs.GetEnv("OSS_ENDPOINT")
	keyID := configs.GetEnv("OSS_ACCESS_KEY_ID")
	keySecret := configs.GetEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := configs.GetEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("konfigurasi OSS belum lengkap")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(configs.GetEnv("OSS_PUBLIC_BASE_URL"), "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}
	return &OSSService{bucket: bucket, publicBase: base}, nil
}

func (s *OSSService) publicURL(key string) string {
	return s.publicBase + "/" + key
}

// UploadImage: pass-through ke OSS; tanpa re-encode lokal.
// Key objek = <folder>/<uuid><ext>; key itulah public_id yang disimpan caller.
func (s *OSSService) UploadImage(ctx context.Context, fh *multipart.FileHeader, folder string) (UploadResult, error) {
	if fh == nil {
		return UploadResult{}, fmt.Errorf("file tidak ditemukan")
	}
	src, err := fh.Open()
	if err != nil {
		return UploadResult{}, err
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return UploadResult{}, err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), ext)

	opts := []oss.Option{oss.WithContext(ctx)}
	if ct := fh.Header.Get(fiberHeaderContentType); ct != "" {
		opts = append(opts, oss.ContentType(ct))
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(all), opts...); err != nil {
		return UploadResult{}, err
	}

	res := UploadResult{
		URL:      s.publicURL(key),
		PublicID: key,
		Format:   strings.TrimPrefix(ext, "."),
		Bytes:    int64(len(all)),
	}
	// Dimensi best-effort (webp tidak terdaftar di decoder std → 0).
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(all)); err == nil {
		res.Width = cfg.Width
		res.Height = cfg.Height
	}
	return res, nil
}

func (s *OSSService) Delete(ctx context.Context, publicID string) (bool, error) {
	if strings.TrimSpace(publicID) == "" {
		return false, fmt.Errorf("public_id kosong")
	}
	if err := s.bucket.DeleteObject(publicID, oss.WithContext(ctx)); err != nil {
		return false, err
	}
	return true, nil
}

const fiberHeaderContentType = "Content-Type"
