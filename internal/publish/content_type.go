package publish

import (
	"path/filepath"
	"strings"
)

// assetContentTypes maps the file extensions found in a tour asset tree
// to their upload content types.
var assetContentTypes = map[string]string{
	".png":     "image/png",
	".jpg":     "image/jpeg",
	".jpeg":    "image/jpeg",
	".webp":    "image/webp",
	".mp3":     "audio/mpeg",
	".txt":     "text/plain; charset=utf-8",
	".json":    "application/json",
	".whisker": "application/json",
}

// ContentType returns the upload content type for a file, falling back to
// application/octet-stream for extensions outside the asset conventions.
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := assetContentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
