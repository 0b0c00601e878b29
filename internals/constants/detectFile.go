package constants

import (
	"net/url"
	"path"
	"strings"
)

type FileType int

const (
	FileUnknown  FileType = 0
	FileAudio    FileType = 2
	FileDocument FileType = 3
	FilePDF      FileType = 4
	FileSlides   FileType = 5
	FileImage    FileType = 6
)

// DetectFileTypeFromExt classifies a file name or storage URL by extension.
// Query strings and fragments are ignored.
func DetectFileTypeFromExt(name string) FileType {
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		name = u.Path
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3", ".wav", ".m4a":
		return FileAudio
	case ".doc", ".docx":
		return FileDocument
	case ".pdf":
		return FilePDF
	case ".ppt", ".pptx":
		return FileSlides
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".heic":
		return FileImage
	default:
		return FileUnknown
	}
}

// MaybeImage reports whether a URL can be an image: either it has an
// image extension or no recognizable one at all.
func MaybeImage(name string) bool {
	t := DetectFileTypeFromExt(name)
	return t == FileImage || t == FileUnknown
}
