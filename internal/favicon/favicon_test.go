package favicon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerate_ProducesAllFiles(t *testing.T) {
	dir := t.TempDir()

	if err := Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, name := range []string{FileICO, FilePNG32, FilePNG16} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s not written: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	if err := Generate(dirA); err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	if err := Generate(dirB); err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}

	for _, name := range []string{FileICO, FilePNG32, FilePNG16} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs (%d vs %d bytes)", name, len(a), len(b))
		}
	}
}

func TestGenerate_Overwrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, FileICO)
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatalf("failed to seed stale file: %v", err)
	}

	if err := Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatalf("read favicon.ico: %v", err)
	}
	if bytes.Equal(data, []byte("stale")) {
		t.Error("Generate did not overwrite the existing favicon.ico")
	}
}

func TestPNGSizes(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		file string
		size int
	}{
		{FilePNG32, 32},
		{FilePNG16, 16},
	}

	for _, tt := range tests {
		f, err := os.Open(filepath.Join(dir, tt.file))
		if err != nil {
			t.Fatalf("open %s: %v", tt.file, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", tt.file, err)
		}
		if b := img.Bounds(); b.Dx() != tt.size || b.Dy() != tt.size {
			t.Errorf("%s is %dx%d, want %dx%d", tt.file, b.Dx(), b.Dy(), tt.size, tt.size)
		}
	}
}

func TestICOStructure(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileICO))
	if err != nil {
		t.Fatalf("read favicon.ico: %v", err)
	}
	if len(data) < icoHeaderSize+3*icoEntrySize {
		t.Fatalf("ico too short: %d bytes", len(data))
	}

	if binary.LittleEndian.Uint16(data[0:2]) != 0 {
		t.Error("reserved field should be 0")
	}
	if binary.LittleEndian.Uint16(data[2:4]) != 1 {
		t.Error("type field should be 1 (icon)")
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != 3 {
		t.Errorf("entry count = %d, want 3", got)
	}

	// Each directory entry's offset/length pair must point at a PNG.
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	wantSizes := []byte{16, 32, 64}
	for i := 0; i < 3; i++ {
		entry := data[icoHeaderSize+i*icoEntrySize:]
		if entry[0] != wantSizes[i] {
			t.Errorf("entry %d width byte = %d, want %d", i, entry[0], wantSizes[i])
		}
		length := binary.LittleEndian.Uint32(entry[8:12])
		offset := binary.LittleEndian.Uint32(entry[12:16])
		if int(offset)+int(length) > len(data) {
			t.Fatalf("entry %d out of bounds (offset %d, length %d)", i, offset, length)
		}
		if !bytes.HasPrefix(data[offset:], pngMagic) {
			t.Errorf("entry %d is not PNG-compressed", i)
		}
	}
}

func TestRenderCornersKeepBackground(t *testing.T) {
	img, err := render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	// The disc is inset 4px, so corners stay pure background.
	got := img.RGBAAt(0, 0)
	if got != background {
		t.Errorf("corner pixel = %v, want %v", got, background)
	}
}

func TestRenderCenterIsNotBackground(t *testing.T) {
	img, err := render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	// Somewhere near the center the gradient or glyph must have painted.
	if img.RGBAAt(canvasSize/2, canvasSize/2) == background {
		t.Error("center pixel unchanged, nothing was drawn")
	}
}

func TestWritePlaceholder(t *testing.T) {
	dir := t.TempDir()
	if err := WritePlaceholder(dir); err != nil {
		t.Fatalf("WritePlaceholder failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileICO))
	if err != nil {
		t.Fatalf("read placeholder: %v", err)
	}
	if len(data) != placeholderSize {
		t.Errorf("placeholder size = %d, want %d", len(data), placeholderSize)
	}
	if !bytes.HasPrefix(data, []byte{0x00, 0x00, 0x01, 0x00}) {
		t.Error("placeholder missing ICO magic")
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	dst := scale(src, 32)
	if b := dst.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("scale produced %dx%d, want 32x32", b.Dx(), b.Dy())
	}
}
