// file: internals/helpers/readtime.go
package helper

import "strings"

// Asumsi kecepatan baca 200 kata/menit (ikut konten asli situs).
const wordsPerMinute = 200

func CountWords(content string) int {
	return len(strings.Fields(content))
}

// ReadTime: estimasi menit baca, dibulatkan ke atas, minimal 0 untuk konten kosong.
func ReadTime(content string) int {
	words := CountWords(content)
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
