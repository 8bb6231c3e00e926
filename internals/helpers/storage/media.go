// file: internals/helpers/storage/media.go
package storage

import (
	"context"
	"mime/multipart"
)

// UploadResult: URL publik + identifier opaque dari media host.
// Keduanya WAJIB diisi bersamaan oleh implementasi (tidak boleh placeholder).
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Format   string `json:"format"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Bytes    int64  `json:"bytes"`
}

// Service adalah kontrak sempit ke media host eksternal.
// Adapter ini stateless: tidak ada state lokal di disk maupun DB.
type Service interface {
	UploadImage(ctx context.Context, fh *multipart.FileHeader, folder string) (UploadResult, error)
	Delete(ctx context.Context, publicID string) (bool, error)
}
