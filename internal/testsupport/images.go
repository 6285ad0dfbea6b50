package testsupport

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// EncodePNG renders a small gradient PNG; seed varies the pixels so images
// are perceptually distinct under difference hashing.
func EncodePNG(t testing.TB, seed int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			v := uint8((x*8 + seed*37) % 256)
			if seed%2 == 1 {
				v = uint8(255 - int(v))
			}
			img.Set(x, y, color.RGBA{R: v, G: uint8(y * 8), B: v, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// WritePNG writes a gradient PNG into dir and returns its path.
func WritePNG(t testing.TB, dir, name string, seed int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, EncodePNG(t, seed), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
