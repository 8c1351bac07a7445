package deepfake

import "strings"

var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
}

// MIMEFromFilename derives a MIME type from a filename extension.
func MIMEFromFilename(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return "application/octet-stream"
	}
	if m, ok := mimeByExt[strings.ToLower(filename[idx:])]; ok {
		return m
	}
	return "application/octet-stream"
}

// MediaTypeFromMIME buckets a MIME type into image/audio/video, defaulting
// to image.
func MediaTypeFromMIME(mime string) string {
	switch {
	case strings.HasPrefix(mime, "video/"):
		return MediaVideo
	case strings.HasPrefix(mime, "audio/"):
		return MediaAudio
	default:
		return MediaImage
	}
}
