package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// jpegFixture is the smallest byte sequence that sniffs as image/jpeg: SOI,
// a JFIF APP0 segment and EOI. No decoder will render it.
var jpegFixture = []byte{
	0xFF, 0xD8,
	0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
	0xFF, 0xD9,
}

// PictureBytes returns a fresh copy of the JPEG fixture, suitable as a fake
// asset body.
func PictureBytes() []byte {
	return append([]byte(nil), jpegFixture...)
}

// WritePicture stores the JPEG fixture at path, creating parent directories.
func WritePicture(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, jpegFixture, 0o644); err != nil {
		t.Fatalf("write picture %s: %v", path, err)
	}
}
