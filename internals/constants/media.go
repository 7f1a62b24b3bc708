package constants

import (
	"path/filepath"
	"strings"
)

// Allow-list content type video yang diterima uploader.
var AllowedVideoTypes = []string{
	"video/mp4",
	"video/avi",
	"video/mov",
	"video/webm",
	"video/quicktime",
	"video/x-msvideo",
	"video/x-ms-wmv",
}

func IsAllowedVideoType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	// buang parameter ;charset= dsb.
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	for _, allowed := range AllowedVideoTypes {
		if ct == allowed {
			return true
		}
	}
	return false
}

// SupportedVideoFormats untuk endpoint /info.
var SupportedVideoFormats = []string{"mp4", "avi", "mov", "webm", "quicktime"}

func IsImageFilename(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	default:
		return false
	}
}
