package imagefile

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// maxFileSize caps uploads at 20 MiB, the inline payload limit of the
// metadata service.
const maxFileSize = 20 << 20

var supportedMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// Image is a loaded source image ready for metadata generation.
type Image struct {
	Path     string
	FileName string
	MIMEType string
	Data     []byte
	// Decoded is nil when the pixel data could not be parsed; only duplicate
	// detection needs it.
	Decoded image.Image
	// Attribution carries existing copyright metadata found in the file.
	Attribution Attribution
}

// Load reads and inspects a single image file.
func Load(path string) (*Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("imagefile: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("imagefile: %s is a directory", path)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("imagefile: %s exceeds the %d MiB limit", path, maxFileSize>>20)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imagefile: read %s: %w", path, err)
	}

	return FromBytes(path, data)
}

// FromBytes builds an Image from in-memory data, used by the upload handler.
func FromBytes(path string, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("imagefile: %s is empty", path)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("imagefile: %s exceeds the %d MiB limit", path, maxFileSize>>20)
	}

	mimeType := sniffMIMEType(data)
	if _, ok := supportedMIMETypes[mimeType]; !ok {
		return nil, fmt.Errorf("imagefile: unsupported type %q for %s", mimeType, path)
	}

	img := &Image{
		Path:        path,
		FileName:    filepath.Base(path),
		MIMEType:    mimeType,
		Data:        data,
		Attribution: extractAttribution(data),
	}

	if decoded, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		img.Decoded = decoded
	}

	return img, nil
}

// IsSupportedExt reports whether a filename extension is worth loading.
// Directory walks use this to filter without reading file contents.
func IsSupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return true
	default:
		return false
	}
}

func sniffMIMEType(data []byte) string {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	mimeType := http.DetectContentType(sample)
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.TrimSpace(mimeType)
}
