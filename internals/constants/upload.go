package constants

// Batas & allow-list upload gambar (cek dilakukan sebelum kirim ke media host).
const MaxUploadSize = int64(5 * 1024 * 1024) // 5MB

var AllowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

func IsAllowedImageType(ct string) bool {
	_, ok := AllowedImageTypes[ct]
	return ok
}
